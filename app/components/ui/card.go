package ui

// section renders the simple container components that only carry classes.
func section(tag, classes string, b *BaseConfig) *Node {
	return b.finish(El(tag).WithClass(classes))
}

// Card
type CardConfig struct{ BaseConfig }

func (c *CardConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardOption = Option[*CardConfig]

func Card(opts ...CardOption) *Node {
	c := apply(&CardConfig{}, opts)
	return section("div", "rounded-lg border bg-card text-card-foreground shadow-sm", &c.BaseConfig)
}

// CardHeader
type CardHeaderConfig struct{ BaseConfig }

func (c *CardHeaderConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardHeaderOption = Option[*CardHeaderConfig]

func CardHeader(opts ...CardHeaderOption) *Node {
	c := apply(&CardHeaderConfig{}, opts)
	return section("div", "flex flex-col space-y-1.5 p-6", &c.BaseConfig)
}

// CardTitle
type CardTitleConfig struct{ BaseConfig }

func (c *CardTitleConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardTitleOption = Option[*CardTitleConfig]

func CardTitle(opts ...CardTitleOption) *Node {
	c := apply(&CardTitleConfig{}, opts)
	return section("h3", "text-2xl font-semibold leading-none tracking-tight", &c.BaseConfig)
}

// CardDescription
type CardDescriptionConfig struct{ BaseConfig }

func (c *CardDescriptionConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardDescriptionOption = Option[*CardDescriptionConfig]

func CardDescription(opts ...CardDescriptionOption) *Node {
	c := apply(&CardDescriptionConfig{}, opts)
	return section("p", "text-sm text-muted-foreground", &c.BaseConfig)
}

// CardContent
type CardContentConfig struct{ BaseConfig }

func (c *CardContentConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardContentOption = Option[*CardContentConfig]

func CardContent(opts ...CardContentOption) *Node {
	c := apply(&CardContentConfig{}, opts)
	return section("div", "p-6 pt-0", &c.BaseConfig)
}

// CardFooter
type CardFooterConfig struct{ BaseConfig }

func (c *CardFooterConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardFooterOption = Option[*CardFooterConfig]

func CardFooter(opts ...CardFooterOption) *Node {
	c := apply(&CardFooterConfig{}, opts)
	return section("div", "flex items-center p-6 pt-0", &c.BaseConfig)
}

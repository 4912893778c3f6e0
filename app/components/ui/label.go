package ui

type LabelConfig struct {
	BaseConfig
	For string
}

func (c *LabelConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type LabelOption = Option[*LabelConfig]

func LabelFor(id string) LabelOption {
	return func(c *LabelConfig) { c.For = id }
}

func Label(opts ...LabelOption) *Node {
	c := apply(&LabelConfig{}, opts)

	n := El("label").WithClass(
		"text-sm font-medium leading-none peer-disabled:cursor-not-allowed peer-disabled:opacity-70",
	)
	if c.For != "" {
		n.Set("for", c.For)
	}
	return c.finish(n)
}

package ui

// 1. Component Config
type DialogConfig struct {
	BaseConfig
	Open          bool
	CloseOnEscape bool
	Title         string
	Description   string
}

// Implement ConfigProvider interface
func (c *DialogConfig) GetBase() *BaseConfig { return &c.BaseConfig }

// Options
type DialogOption = Option[*DialogConfig]

// DialogOpen renders the dialog already open. Opening it later is left to
// showModal() on the element.
func DialogOpen(b bool) DialogOption {
	return func(c *DialogConfig) { c.Open = b }
}

func DialogCloseOnEscape(b bool) DialogOption {
	return func(c *DialogConfig) { c.CloseOnEscape = b }
}

// DialogTitle renders a header title and labels the dialog with it.
func DialogTitle(s string) DialogOption {
	return func(c *DialogConfig) { c.Title = s }
}

func DialogDescription(s string) DialogOption {
	return func(c *DialogConfig) { c.Description = s }
}

// 2. Implementation
func Dialog(opts ...DialogOption) *Node {
	c := apply(&DialogConfig{CloseOnEscape: true}, opts)
	id := c.ensureID("dialog")

	n := El("dialog").WithClass(
		"fixed left-[50%] top-[50%] z-50 m-0 grid w-full max-w-lg translate-x-[-50%] translate-y-[-50%] gap-4 border bg-background p-6 shadow-lg duration-200 backdrop:bg-black/80 open:animate-in open:fade-in-0 open:zoom-in-95 sm:rounded-lg",
	)
	n.Set("open", c.Open)
	n.Set("aria-modal", "true")
	if c.CloseOnEscape {
		n.Set("closedby", "closerequest")
	} else {
		n.Set("closedby", "none")
	}

	if c.Title != "" || c.Description != "" {
		header := DialogHeader()
		if c.Title != "" {
			header.Append(dialogTitle(id+"-title", c.Title))
			n.Set("aria-labelledby", id+"-title")
		}
		if c.Description != "" {
			header.Append(dialogDescription(id+"-description", c.Description))
			n.Set("aria-describedby", id+"-description")
		}
		n.Append(header)
	}
	return c.finish(n)
}

func dialogTitle(id, s string) *Node {
	return El("h2", Text(s)).
		WithClass("text-lg font-semibold leading-none tracking-tight").
		Set("id", id)
}

func dialogDescription(id, s string) *Node {
	return El("p", Text(s)).
		WithClass("text-sm text-muted-foreground").
		Set("id", id)
}

// DialogHeader
type DialogHeaderConfig struct{ BaseConfig }

func (c *DialogHeaderConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type DialogHeaderOption = Option[*DialogHeaderConfig]

func DialogHeader(opts ...DialogHeaderOption) *Node {
	c := apply(&DialogHeaderConfig{}, opts)
	return section("div", "flex flex-col space-y-1.5 text-center sm:text-left", &c.BaseConfig)
}

// DialogFooter
type DialogFooterConfig struct{ BaseConfig }

func (c *DialogFooterConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type DialogFooterOption = Option[*DialogFooterConfig]

func DialogFooter(opts ...DialogFooterOption) *Node {
	c := apply(&DialogFooterConfig{}, opts)
	return section("div", "flex flex-col-reverse gap-2 sm:flex-row sm:justify-end", &c.BaseConfig)
}

// DialogClose wraps a button in a method=dialog form so submitting it closes
// the enclosing dialog without script.
func DialogClose(opts ...ButtonOption) *Node {
	opts = append([]ButtonOption{Variant(ButtonVariantOutline)}, opts...)
	opts = append(opts, ButtonType("submit"))
	return El("form", Button(opts...)).Set("method", "dialog")
}

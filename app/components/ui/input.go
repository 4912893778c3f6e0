package ui

import (
	"strconv"

	"github.com/vango-dev/vango-ui/pkg/tw"
)

const fieldInvalidClasses = "border-destructive focus-visible:ring-destructive"

type InputConfig struct {
	BaseConfig
	Type        string
	Name        string
	Placeholder string
	Value       string
	Disabled    bool
	Required    bool
	Invalid     bool
}

func (c *InputConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type InputOption = Option[*InputConfig]

func InputType(t string) InputOption {
	return func(c *InputConfig) { c.Type = t }
}

func InputName(s string) InputOption {
	return func(c *InputConfig) { c.Name = s }
}

func InputPlaceholder(s string) InputOption {
	return func(c *InputConfig) { c.Placeholder = s }
}

func InputValue(s string) InputOption {
	return func(c *InputConfig) { c.Value = s }
}

func InputDisabled(b bool) InputOption {
	return func(c *InputConfig) { c.Disabled = b }
}

func InputRequired(b bool) InputOption {
	return func(c *InputConfig) { c.Required = b }
}

// InputInvalid marks the field as failing validation.
func InputInvalid(b bool) InputOption {
	return func(c *InputConfig) { c.Invalid = b }
}

func Input(opts ...InputOption) *Node {
	c := apply(&InputConfig{
		Type: "text", // Default
	}, opts)

	n := El("input").WithClass(
		"flex h-10 w-full rounded-md border border-input bg-background px-3 py-2 text-base ring-offset-background file:border-0 file:bg-transparent file:text-sm file:font-medium file:text-foreground placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:cursor-not-allowed disabled:opacity-50 md:text-sm",
		tw.If(c.Invalid, fieldInvalidClasses),
	)
	if c.Type != "" {
		n.Set("type", c.Type)
	}
	if c.Name != "" {
		n.Set("name", c.Name)
	}
	if c.Placeholder != "" {
		n.Set("placeholder", c.Placeholder)
	}
	if c.Value != "" {
		n.Set("value", c.Value)
	}
	n.Set("disabled", c.Disabled)
	n.Set("required", c.Required)
	if c.Invalid {
		n.Set("aria-invalid", "true")
	}

	// input is a void element
	c.Children = nil
	return c.finish(n)
}

type TextareaConfig struct {
	BaseConfig
	Name        string
	Placeholder string
	Value       string
	Rows        int
	Disabled    bool
	Invalid     bool
}

func (c *TextareaConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type TextareaOption = Option[*TextareaConfig]

func TextareaName(s string) TextareaOption {
	return func(c *TextareaConfig) { c.Name = s }
}

func TextareaPlaceholder(s string) TextareaOption {
	return func(c *TextareaConfig) { c.Placeholder = s }
}

func TextareaValue(s string) TextareaOption {
	return func(c *TextareaConfig) { c.Value = s }
}

func TextareaRows(n int) TextareaOption {
	return func(c *TextareaConfig) { c.Rows = n }
}

func TextareaDisabled(b bool) TextareaOption {
	return func(c *TextareaConfig) { c.Disabled = b }
}

func TextareaInvalid(b bool) TextareaOption {
	return func(c *TextareaConfig) { c.Invalid = b }
}

func Textarea(opts ...TextareaOption) *Node {
	c := apply(&TextareaConfig{Rows: 3}, opts)

	n := El("textarea").WithClass(
		"flex min-h-[80px] w-full rounded-md border border-input bg-background px-3 py-2 text-base ring-offset-background placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:cursor-not-allowed disabled:opacity-50 md:text-sm",
		tw.If(c.Invalid, fieldInvalidClasses),
	)
	if c.Name != "" {
		n.Set("name", c.Name)
	}
	if c.Placeholder != "" {
		n.Set("placeholder", c.Placeholder)
	}
	if c.Rows > 0 {
		n.Set("rows", strconv.Itoa(c.Rows))
	}
	n.Set("disabled", c.Disabled)
	if c.Invalid {
		n.Set("aria-invalid", "true")
	}

	// the value is the only content of a textarea
	c.Children = nil
	if c.Value != "" {
		n.Append(Text(c.Value))
	}
	return c.finish(n)
}

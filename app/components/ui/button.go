package ui

import (
	"github.com/vango-dev/vango-ui/pkg/variants"
)

// 1. Define Typed Enums
type ButtonVariant string

const (
	ButtonVariantDefault     ButtonVariant = "default"
	ButtonVariantPrimary     ButtonVariant = "primary"
	ButtonVariantDestructive ButtonVariant = "destructive"
	ButtonVariantOutline     ButtonVariant = "outline"
	ButtonVariantSecondary   ButtonVariant = "secondary"
	ButtonVariantGhost       ButtonVariant = "ghost"
	ButtonVariantLink        ButtonVariant = "link"
)

type ButtonSize string

const (
	ButtonSizeSm   ButtonSize = "sm"
	ButtonSizeMd   ButtonSize = "md"
	ButtonSizeLg   ButtonSize = "lg"
	ButtonSizeIcon ButtonSize = "icon"

	ButtonSizeDefault = ButtonSizeMd
)

// 2. Variant tables. The size axis is shared with IconButton.
const buttonBase = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium ring-offset-background transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50"

var (
	buttonVariantAxis = variants.NewAxis("variant", ButtonVariantDefault, map[ButtonVariant]string{
		ButtonVariantDefault:     "bg-primary text-primary-foreground hover:bg-primary/90",
		ButtonVariantPrimary:     "bg-primary text-primary-foreground hover:bg-primary/90",
		ButtonVariantDestructive: "bg-destructive text-destructive-foreground hover:bg-destructive/90",
		ButtonVariantOutline:     "border border-input bg-background hover:bg-accent hover:text-accent-foreground",
		ButtonVariantSecondary:   "bg-secondary text-secondary-foreground hover:bg-secondary/80",
		ButtonVariantGhost:       "hover:bg-accent hover:text-accent-foreground",
		ButtonVariantLink:        "text-primary underline-offset-4 hover:underline",
	})

	buttonSizeAxis = variants.NewAxis("size", ButtonSizeMd, map[ButtonSize]string{
		ButtonSizeSm:   "h-9 rounded-md px-3",
		ButtonSizeMd:   "h-10 px-4 py-2",
		ButtonSizeLg:   "h-11 rounded-md px-8",
		ButtonSizeIcon: "h-10 w-10",
	})

	iconButtonSquareAxis = variants.NewAxis("square", ButtonSizeMd, map[ButtonSize]string{
		ButtonSizeSm:   "w-9 px-0",
		ButtonSizeMd:   "w-10 px-0 py-0",
		ButtonSizeLg:   "w-11 px-0",
		ButtonSizeIcon: "w-10 px-0",
	})

	buttonVariants     = variants.New(buttonBase, buttonVariantAxis, buttonSizeAxis)
	iconButtonVariants = variants.New(buttonBase+" shrink-0", buttonVariantAxis, buttonSizeAxis, iconButtonSquareAxis)
)

// 3. Define Component Config
type ButtonConfig struct {
	BaseConfig // Embeds ID, Classes, Passthrough, Children
	Variant    ButtonVariant
	Size       ButtonSize
	Type       string
	Disabled   bool
	Loading    bool
	Label      string // aria-label, required for IconButton
}

// Implement ConfigProvider interface
func (c *ButtonConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type ButtonOption = Option[*ButtonConfig]

// 4. Define Component-Specific Options
func Variant(v ButtonVariant) ButtonOption {
	return func(c *ButtonConfig) { c.Variant = v }
}

func Size(s ButtonSize) ButtonOption {
	return func(c *ButtonConfig) { c.Size = s }
}

func ButtonType(t string) ButtonOption {
	return func(c *ButtonConfig) { c.Type = t }
}

func ButtonDisabled(b bool) ButtonOption {
	return func(c *ButtonConfig) { c.Disabled = b }
}

// ButtonLoading disables the button and prepends a spinner.
func ButtonLoading(b bool) ButtonOption {
	return func(c *ButtonConfig) { c.Loading = b }
}

func ButtonLabel(s string) ButtonOption {
	return func(c *ButtonConfig) { c.Label = s }
}

func newButtonConfig(opts []ButtonOption) *ButtonConfig {
	return apply(&ButtonConfig{
		Variant: ButtonVariantDefault,
		Size:    ButtonSizeDefault,
		Type:    "button",
	}, opts)
}

// 5. Implementation
func Button(opts ...ButtonOption) *Node {
	c := newButtonConfig(opts)
	return c.render(buttonVariants, buttonVariants.Resolve(
		buttonVariantAxis.Pick(c.Variant),
		buttonSizeAxis.Pick(c.Size),
	))
}

// DefaultIconButtonLabel names an IconButton given no ButtonLabel and no
// aria-label or aria-labelledby attribute.
const DefaultIconButtonLabel = "Button"

// IconButton is a square button around a single icon. It shares the button
// variant and size axes and adds a width matching the size's height. It
// always carries an accessible name.
func IconButton(opts ...ButtonOption) *Node {
	c := newButtonConfig(opts)
	if c.Label == "" && !c.hasAccessibleName() {
		c.Label = DefaultIconButtonLabel
	}
	return c.render(iconButtonVariants, iconButtonVariants.Resolve(
		buttonVariantAxis.Pick(c.Variant),
		buttonSizeAxis.Pick(c.Size),
		iconButtonSquareAxis.Pick(c.Size),
	))
}

func (c *ButtonConfig) hasAccessibleName() bool {
	for _, k := range []string{"aria-label", "aria-labelledby"} {
		if _, ok := c.Passthrough[k]; ok {
			return true
		}
	}
	return false
}

func (c *ButtonConfig) render(table *variants.Table, variantClasses []string) *Node {
	n := El("button").WithClass(table.Base(), variantClasses)
	n.Set("type", c.Type)
	n.Set("data-variant", string(c.Variant))
	n.Set("data-size", string(c.Size))
	if c.Label != "" {
		n.Set("aria-label", c.Label)
	}
	if c.Disabled || c.Loading {
		n.Set("disabled", true)
	}
	if c.Loading {
		n.Set("aria-busy", "true")
		n.Append(Spinner(WithSpinnerSize(SpinnerSizeSm), Class[*SpinnerConfig]("text-current")))
	}
	return c.finish(n)
}

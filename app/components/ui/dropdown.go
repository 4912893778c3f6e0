package ui

import (
	"github.com/a-h/templ"

	"github.com/vango-dev/vango-ui/pkg/tw"
	"github.com/vango-dev/vango-ui/pkg/variants"
)

var dropdownContentVariants = variants.New(
	"z-50 inset-auto m-0 min-w-[8rem] overflow-hidden rounded-md border bg-popover p-1 text-popover-foreground shadow-md",
	sideAxis,
)

// DropdownMenu
type DropdownMenuConfig struct {
	BaseConfig
	Side           Side
	Trigger        []templ.Component
	TriggerVariant ButtonVariant
}

func (c *DropdownMenuConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type DropdownMenuOption = Option[*DropdownMenuConfig]

func DropdownMenuSide(s Side) DropdownMenuOption {
	return func(c *DropdownMenuConfig) { c.Side = s }
}

func DropdownMenuTrigger(children ...templ.Component) DropdownMenuOption {
	return func(c *DropdownMenuConfig) { c.Trigger = append(c.Trigger, children...) }
}

func DropdownMenuTriggerVariant(v ButtonVariant) DropdownMenuOption {
	return func(c *DropdownMenuConfig) { c.TriggerVariant = v }
}

// DropdownMenu renders a trigger and a menu popover holding the children,
// usually DropdownMenuItem, DropdownMenuLabel and DropdownMenuSeparator.
// Id, classes and attributes apply to the menu.
func DropdownMenu(opts ...DropdownMenuOption) *Node {
	c := apply(&DropdownMenuConfig{Side: SideBottom, TriggerVariant: ButtonVariantOutline}, opts)
	id := c.ensureID("menu")

	trigger := anchorTrigger(id, "menu", c.TriggerVariant, c.Trigger)
	menu := anchoredContent(id, c.Side, dropdownContentVariants).
		Set("role", "menu").
		Set("aria-labelledby", id+"-trigger")

	return El("div", trigger, c.finish(menu)).WithClass("inline-block")
}

// DropdownMenuItem
type DropdownMenuItemVariant string

const (
	DropdownMenuItemDefault     DropdownMenuItemVariant = "default"
	DropdownMenuItemDestructive DropdownMenuItemVariant = "destructive"
)

var (
	dropdownItemVariantAxis = variants.NewAxis("variant", DropdownMenuItemDefault, map[DropdownMenuItemVariant]string{
		DropdownMenuItemDefault:     "focus:bg-accent focus:text-accent-foreground hover:bg-accent hover:text-accent-foreground",
		DropdownMenuItemDestructive: "text-destructive focus:bg-destructive/10 focus:text-destructive hover:bg-destructive/10",
	})
	dropdownItemVariants = variants.New(
		"relative flex w-full cursor-default select-none items-center gap-2 rounded-sm px-2 py-1.5 text-left text-sm outline-none transition-colors",
		dropdownItemVariantAxis,
	)
)

type DropdownMenuItemConfig struct {
	BaseConfig
	Variant  DropdownMenuItemVariant
	Href     string
	Inset    bool
	Disabled bool
}

func (c *DropdownMenuItemConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type DropdownMenuItemOption = Option[*DropdownMenuItemConfig]

func WithDropdownMenuItemVariant(v DropdownMenuItemVariant) DropdownMenuItemOption {
	return func(c *DropdownMenuItemConfig) { c.Variant = v }
}

// DropdownMenuItemHref renders the item as a link.
func DropdownMenuItemHref(href string) DropdownMenuItemOption {
	return func(c *DropdownMenuItemConfig) { c.Href = href }
}

// DropdownMenuItemInset aligns the item with items that carry an icon.
func DropdownMenuItemInset(b bool) DropdownMenuItemOption {
	return func(c *DropdownMenuItemConfig) { c.Inset = b }
}

func DropdownMenuItemDisabled(b bool) DropdownMenuItemOption {
	return func(c *DropdownMenuItemConfig) { c.Disabled = b }
}

func DropdownMenuItem(opts ...DropdownMenuItemOption) *Node {
	c := apply(&DropdownMenuItemConfig{Variant: DropdownMenuItemDefault}, opts)

	var n *Node
	if c.Href != "" && !c.Disabled {
		n = El("a").Set("href", c.Href)
	} else {
		n = El("button").Set("type", "button").Set("disabled", c.Disabled)
	}
	n.WithClass(
		dropdownItemVariants.Base(),
		dropdownItemVariants.Resolve(dropdownItemVariantAxis.Pick(c.Variant)),
		tw.If(c.Inset, "pl-8"),
		tw.If(c.Disabled, "pointer-events-none opacity-50"),
	)
	n.Set("role", "menuitem")
	n.Set("tabindex", "-1")
	n.Set("data-variant", string(c.Variant))
	if c.Disabled {
		n.Set("aria-disabled", "true")
		n.Set("data-disabled", true)
	}
	return c.finish(n)
}

// DropdownMenuLabel
type DropdownMenuLabelConfig struct {
	BaseConfig
	Inset bool
}

func (c *DropdownMenuLabelConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type DropdownMenuLabelOption = Option[*DropdownMenuLabelConfig]

func DropdownMenuLabelInset(b bool) DropdownMenuLabelOption {
	return func(c *DropdownMenuLabelConfig) { c.Inset = b }
}

func DropdownMenuLabel(opts ...DropdownMenuLabelOption) *Node {
	c := apply(&DropdownMenuLabelConfig{}, opts)
	n := El("div").WithClass("px-2 py-1.5 text-sm font-semibold", tw.If(c.Inset, "pl-8"))
	return c.finish(n)
}

// DropdownMenuSeparator
type DropdownMenuSeparatorConfig struct{ BaseConfig }

func (c *DropdownMenuSeparatorConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type DropdownMenuSeparatorOption = Option[*DropdownMenuSeparatorConfig]

func DropdownMenuSeparator(opts ...DropdownMenuSeparatorOption) *Node {
	c := apply(&DropdownMenuSeparatorConfig{}, opts)
	c.Children = nil
	n := El("div").WithClass("-mx-1 my-1 h-px bg-muted").Set("role", "separator")
	return c.finish(n)
}

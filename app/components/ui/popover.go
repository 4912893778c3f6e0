package ui

import (
	"github.com/a-h/templ"

	"github.com/vango-dev/vango-ui/pkg/variants"
)

// Side is where floating content is placed relative to its anchor.
type Side string

const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
)

// sideAxis is shared by Popover, Tooltip and DropdownMenu. Placement uses CSS
// anchor positioning, so the content must be absolutely positioned.
var sideAxis = variants.NewAxis("side", SideBottom, map[Side]string{
	SideTop:    "[position-area:top] mb-2",
	SideRight:  "[position-area:right] ml-2",
	SideBottom: "[position-area:bottom] mt-2",
	SideLeft:   "[position-area:left] mr-2",
})

var popoverVariants = variants.New(
	"z-50 inset-auto m-0 w-72 rounded-md border bg-popover p-4 text-popover-foreground shadow-md outline-none",
	sideAxis,
)

type PopoverConfig struct {
	BaseConfig
	Side           Side
	Trigger        []templ.Component
	TriggerVariant ButtonVariant
}

func (c *PopoverConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type PopoverOption = Option[*PopoverConfig]

func PopoverSide(s Side) PopoverOption {
	return func(c *PopoverConfig) { c.Side = s }
}

// PopoverTrigger sets the content of the trigger button.
func PopoverTrigger(children ...templ.Component) PopoverOption {
	return func(c *PopoverConfig) { c.Trigger = append(c.Trigger, children...) }
}

func PopoverTriggerVariant(v ButtonVariant) PopoverOption {
	return func(c *PopoverConfig) { c.TriggerVariant = v }
}

// Popover renders a trigger button and a native popover panel holding the
// children. Id, classes and attributes apply to the panel.
func Popover(opts ...PopoverOption) *Node {
	c := apply(&PopoverConfig{Side: SideBottom, TriggerVariant: ButtonVariantOutline}, opts)
	id := c.ensureID("popover")

	trigger := anchorTrigger(id, "dialog", c.TriggerVariant, c.Trigger)
	content := anchoredContent(id, c.Side, popoverVariants).Set("role", "dialog")

	return El("div", trigger, c.finish(content)).WithClass("inline-block")
}

// anchorTrigger is a button toggling the popover with the given id and acting
// as its CSS anchor.
func anchorTrigger(id, haspopup string, variant ButtonVariant, children []templ.Component) *Node {
	return Button(
		Variant(variant),
		ID[*ButtonConfig](id+"-trigger"),
		Child[*ButtonConfig](children...),
		Attrs[*ButtonConfig](templ.Attributes{
			"popovertarget": id,
			"aria-controls": id,
			"aria-haspopup": haspopup,
			"style":         anchorName(id),
		}),
	)
}

// anchoredContent is an auto popover placed next to the element anchored by id.
func anchoredContent(id string, side Side, table *variants.Table) *Node {
	return El("div").
		WithClass(table.Base(), table.Resolve(sideAxis.Pick(side))).
		Set("popover", "auto").
		Set("data-side", string(side)).
		Set("style", positionAnchor(id))
}

func anchorName(id string) string     { return "anchor-name:--" + id }
func positionAnchor(id string) string { return "position-anchor:--" + id }

package ui

import "github.com/vango-dev/vango-ui/pkg/variants"

var tooltipVariants = variants.New(
	"pointer-events-none absolute z-50 w-max rounded-md border bg-popover px-3 py-1.5 text-sm text-popover-foreground shadow-md invisible opacity-0 transition-opacity group-hover:visible group-hover:opacity-100 group-focus-within:visible group-focus-within:opacity-100",
	sideAxis,
)

type TooltipConfig struct {
	BaseConfig
	Side Side
	Text string
}

func (c *TooltipConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type TooltipOption = Option[*TooltipConfig]

func TooltipSide(s Side) TooltipOption {
	return func(c *TooltipConfig) { c.Side = s }
}

// TooltipText sets the hint shown on hover or focus.
func TooltipText(s string) TooltipOption {
	return func(c *TooltipConfig) { c.Text = s }
}

// Tooltip wraps its children (the trigger) and reveals a hint while the
// pointer or focus is inside. It needs no script. Id, classes and attributes
// apply to the hint.
func Tooltip(opts ...TooltipOption) *Node {
	c := apply(&TooltipConfig{Side: SideTop}, opts)
	id := c.ensureID("tooltip")

	trigger := c.Children
	c.Children = nil
	for _, child := range trigger {
		if n, ok := child.(*Node); ok && !n.isText {
			n.Set("aria-describedby", id)
			break
		}
	}

	hint := El("span", Text(c.Text)).
		WithClass(tooltipVariants.Base(), tooltipVariants.Resolve(sideAxis.Pick(c.Side))).
		Set("role", "tooltip").
		Set("data-side", string(c.Side)).
		Set("style", positionAnchor(id))

	wrapper := El("span").
		WithClass("group relative inline-flex").
		Set("style", anchorName(id)).
		Append(trigger...)
	return wrapper.Append(c.finish(hint))
}

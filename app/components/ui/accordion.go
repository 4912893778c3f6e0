package ui

import "github.com/a-h/templ"

// AccordionType controls whether several items may be open at once.
type AccordionType string

const (
	AccordionSingle   AccordionType = "single"
	AccordionMultiple AccordionType = "multiple"
)

type AccordionConfig struct {
	BaseConfig
	Type AccordionType
}

func (c *AccordionConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type AccordionOption = Option[*AccordionConfig]

func WithAccordionType(t AccordionType) AccordionOption {
	return func(c *AccordionConfig) { c.Type = t }
}

// Accordion stacks AccordionItem disclosures. A single accordion gives its
// items a shared name, so the browser closes the others when one opens.
func Accordion(opts ...AccordionOption) *Node {
	c := apply(&AccordionConfig{Type: AccordionSingle}, opts)
	id := c.ensureID("accordion")

	if c.Type == AccordionSingle {
		for _, child := range c.Children {
			item, ok := child.(*Node)
			if !ok || item.Tag != "details" {
				continue
			}
			if _, named := item.Attr("name"); !named {
				item.Set("name", id)
			}
		}
	}

	n := El("div").WithClass("w-full").Set("data-type", string(c.Type))
	return c.finish(n)
}

type AccordionItemConfig struct {
	BaseConfig
	Open bool
}

func (c *AccordionItemConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type AccordionItemOption = Option[*AccordionItemConfig]

func AccordionItemOpen(b bool) AccordionItemOption {
	return func(c *AccordionItemConfig) { c.Open = b }
}

func AccordionItem(opts ...AccordionItemOption) *Node {
	c := apply(&AccordionItemConfig{}, opts)
	n := El("details").WithClass("group border-b").Set("open", c.Open)
	return c.finish(n)
}

type AccordionTriggerConfig struct{ BaseConfig }

func (c *AccordionTriggerConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type AccordionTriggerOption = Option[*AccordionTriggerConfig]

// AccordionTrigger is the item's summary row with a rotating chevron.
func AccordionTrigger(opts ...AccordionTriggerOption) *Node {
	c := apply(&AccordionTriggerConfig{}, opts)
	n := El("summary").WithClass(
		"flex flex-1 cursor-pointer list-none items-center justify-between py-4 font-medium transition-all hover:underline [&::-webkit-details-marker]:hidden",
	)
	c.finish(n)
	return n.Append(chevronDown("h-4 w-4 shrink-0 transition-transform duration-200 group-open:rotate-180"))
}

type AccordionContentConfig struct{ BaseConfig }

func (c *AccordionContentConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type AccordionContentOption = Option[*AccordionContentConfig]

func AccordionContent(opts ...AccordionContentOption) *Node {
	c := apply(&AccordionContentConfig{}, opts)
	return section("div", "overflow-hidden pb-4 pt-0 text-sm", &c.BaseConfig)
}

func chevronDown(classes string) templ.Component {
	return El("svg",
		El("path").Set("d", "m6 9 6 6 6-6"),
	).WithClass(classes).
		Set("xmlns", "http://www.w3.org/2000/svg").
		Set("viewBox", "0 0 24 24").
		Set("fill", "none").
		Set("stroke", "currentColor").
		Set("stroke-width", "2").
		Set("aria-hidden", "true")
}

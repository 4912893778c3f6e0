package ui

import (
	"strings"

	"github.com/vango-dev/vango-ui/pkg/tw"
)

// FormFieldConfig groups a label, a control and its help texts. The control's
// id, aria-describedby and aria-invalid attributes are derived from the field.
type FormFieldConfig struct {
	BaseConfig
	Label       string
	Description string
	Message     string
	Control     *Node
}

func (c *FormFieldConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type FormFieldOption = Option[*FormFieldConfig]

func FormFieldLabel(s string) FormFieldOption {
	return func(c *FormFieldConfig) { c.Label = s }
}

func FormFieldDescription(s string) FormFieldOption {
	return func(c *FormFieldConfig) { c.Description = s }
}

// FormFieldMessage sets a validation message and marks the control invalid.
func FormFieldMessage(s string) FormFieldOption {
	return func(c *FormFieldConfig) { c.Message = s }
}

// FormFieldControl sets the labelled control, typically Input or Textarea.
func FormFieldControl(n *Node) FormFieldOption {
	return func(c *FormFieldConfig) { c.Control = n }
}

func FormField(opts ...FormFieldOption) *Node {
	c := apply(&FormFieldConfig{}, opts)
	id := c.ensureID("field")
	invalid := c.Message != ""

	controlID := id + "-control"
	if c.Control != nil {
		if existing, ok := c.Control.Attr("id"); ok && existing != "" {
			controlID = existing
		}
	}

	n := El("div").WithClass("space-y-2").Set("data-invalid", invalid)

	if c.Label != "" {
		n.Append(Label(
			LabelFor(controlID),
			Content[*LabelConfig](c.Label),
			Class[*LabelConfig](tw.If(invalid, "text-destructive")),
		))
	}

	var describedBy []string
	if c.Description != "" {
		describedBy = append(describedBy, id+"-description")
	}
	if invalid {
		describedBy = append(describedBy, id+"-message")
	}

	if c.Control != nil {
		c.Control.Set("id", controlID)
		if len(describedBy) > 0 {
			c.Control.Set("aria-describedby", strings.Join(describedBy, " "))
		}
		if invalid {
			c.Control.Set("aria-invalid", "true")
			c.Control.WithClass(fieldInvalidClasses)
		}
		n.Append(c.Control)
	}

	if c.Description != "" {
		n.Append(El("p", Text(c.Description)).
			WithClass("text-sm text-muted-foreground").
			Set("id", id+"-description"))
	}
	if invalid {
		n.Append(FormMessage(ID[*FormMessageConfig](id+"-message"), Content[*FormMessageConfig](c.Message)))
	}
	return c.finish(n)
}

type FormMessageConfig struct{ BaseConfig }

func (c *FormMessageConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type FormMessageOption = Option[*FormMessageConfig]

// FormMessage is a validation message announced as it appears.
func FormMessage(opts ...FormMessageOption) *Node {
	c := apply(&FormMessageConfig{}, opts)
	n := El("p").WithClass("text-sm font-medium text-destructive").Set("role", "alert")
	return c.finish(n)
}

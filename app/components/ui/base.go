package ui

import (
	"github.com/a-h/templ"
	"github.com/google/uuid"
)

// BaseConfig is embedded in every component config
type BaseConfig struct {
	ID      string
	Classes []string
	// Passthrough holds extra attributes forwarded verbatim to the root
	// element. They override attributes set by the component; a "class" entry
	// is merged with the component classes instead.
	Passthrough templ.Attributes
	Children    []templ.Component
}

// ConfigProvider interface allows generic options to work on any config
type ConfigProvider interface {
	GetBase() *BaseConfig
}

// Option is a generic option function that modifies a ConfigProvider
type Option[T ConfigProvider] func(T)

// Class adds utility classes, merged last so they win conflicts
func Class[T ConfigProvider](c string) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, c)
	}
}

// Attr forwards a raw attribute (escape hatch)
func Attr[T ConfigProvider](key string, value any) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		if base.Passthrough == nil {
			base.Passthrough = templ.Attributes{}
		}
		base.Passthrough[key] = value
	}
}

// Attrs forwards several raw attributes
func Attrs[T ConfigProvider](attrs templ.Attributes) Option[T] {
	return func(cfg T) {
		for k, v := range attrs {
			Attr[T](k, v)(cfg)
		}
	}
}

// Child appends children
func Child[T ConfigProvider](nodes ...templ.Component) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Children = append(base.Children, nodes...)
	}
}

// Content appends a text child
func Content[T ConfigProvider](s string) Option[T] {
	return Child[T](Text(s))
}

// ID sets the element id. Components that need an id for ARIA wiring
// generate one when it is not set.
func ID[T ConfigProvider](id string) Option[T] {
	return func(cfg T) { cfg.GetBase().ID = id }
}

func apply[T ConfigProvider](cfg T, opts []Option[T]) T {
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// ensureID returns the configured id, generating a prefixed one if missing.
func (b *BaseConfig) ensureID(prefix string) string {
	if b.ID == "" {
		b.ID = prefix + "-" + uuid.NewString()[:8]
	}
	return b.ID
}

// finish applies id, user classes, passthrough attributes and children to n.
func (b *BaseConfig) finish(n *Node) *Node {
	if b.ID != "" {
		n.Set("id", b.ID)
	}
	n.Classes = append(n.Classes, b.Classes...)
	for k, v := range b.Passthrough {
		if k == "class" {
			n.WithClass(v)
			continue
		}
		n.Set(k, v)
	}
	return n.Append(b.Children...)
}

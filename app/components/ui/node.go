package ui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/a-h/templ"
	"golang.org/x/net/html"

	"github.com/vango-dev/vango-ui/pkg/tw"
)

// Node is a rendered element. Class sources are kept unresolved until Render,
// which merges them with the resolver carried by the context (tw.Default
// otherwise). Node implements templ.Component.
type Node struct {
	Tag      string
	Classes  []string
	Attrs    templ.Attributes
	Children []templ.Component

	text   string
	isText bool
}

var _ templ.Component = (*Node)(nil)

// El creates an element node.
func El(tag string, children ...templ.Component) *Node {
	n := &Node{Tag: tag, Attrs: templ.Attributes{}}
	return n.Append(children...)
}

// Text creates an escaped text node.
func Text(s string) *Node {
	return &Node{text: s, isText: true}
}

// WithClass appends class sources (see tw.CN for the accepted kinds).
func (n *Node) WithClass(sources ...any) *Node {
	if s := tw.Join(sources...); s != "" {
		n.Classes = append(n.Classes, s)
	}
	return n
}

// Set sets an attribute. A false bool or nil removes it; true renders it bare.
func (n *Node) Set(key string, value any) *Node {
	if n.Attrs == nil {
		n.Attrs = templ.Attributes{}
	}
	n.Attrs[key] = value
	return n
}

// Append adds children, skipping nil ones.
func (n *Node) Append(children ...templ.Component) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		if node, ok := c.(*Node); ok && node == nil {
			continue
		}
		n.Children = append(n.Children, c)
	}
	return n
}

// Class returns the merged class attribute using the default resolver.
func (n *Node) Class() string {
	return CN(n.Classes)
}

// Attr returns the rendered value of an attribute and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	if key == "class" {
		c := n.Class()
		return c, c != ""
	}
	return attrValue(n.Attrs[key])
}

// Elements returns the element children, skipping text and foreign components.
func (n *Node) Elements() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if node, ok := c.(*Node); ok && !node.isText {
			out = append(out, node)
		}
	}
	return out
}

// Find returns the first descendant (or n itself) with the given tag.
func (n *Node) Find(tag string) *Node {
	if n.Tag == tag && !n.isText {
		return n
	}
	for _, c := range n.Elements() {
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// TextContent concatenates the text of n and its Node descendants.
func (n *Node) TextContent() string {
	if n.isText {
		return n.text
	}
	var b bytes.Buffer
	for _, c := range n.Children {
		if node, ok := c.(*Node); ok {
			b.WriteString(node.TextContent())
		}
	}
	return b.String()
}

// Render writes the node as HTML.
func (n *Node) Render(ctx context.Context, w io.Writer) error {
	h, err := n.toHTML(ctx, tw.FromContext(ctx))
	if err != nil {
		return err
	}
	return html.Render(w, h)
}

// String renders the node with a background context.
func (n *Node) String() string {
	var b bytes.Buffer
	if err := n.Render(context.Background(), &b); err != nil {
		return ""
	}
	return b.String()
}

func (n *Node) toHTML(ctx context.Context, r *tw.Resolver) (*html.Node, error) {
	if n.isText {
		return &html.Node{Type: html.TextNode, Data: n.text}, nil
	}

	h := &html.Node{Type: html.ElementNode, Data: n.Tag}
	if class := r.Merge(n.Classes...); class != "" {
		h.Attr = append(h.Attr, html.Attribute{Key: "class", Val: class})
	}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		if k != "class" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v, ok := attrValue(n.Attrs[k]); ok {
			h.Attr = append(h.Attr, html.Attribute{Key: k, Val: v})
		}
	}

	for _, c := range n.Children {
		child, err := componentToHTML(ctx, r, c)
		if err != nil {
			return nil, err
		}
		h.AppendChild(child)
	}
	return h, nil
}

func componentToHTML(ctx context.Context, r *tw.Resolver, c templ.Component) (*html.Node, error) {
	if node, ok := c.(*Node); ok {
		return node.toHTML(ctx, r)
	}
	var b bytes.Buffer
	if err := c.Render(ctx, &b); err != nil {
		return nil, fmt.Errorf("render child component: %w", err)
	}
	return &html.Node{Type: html.RawNode, Data: b.String()}, nil
}

func attrValue(v any) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "", false
	case bool:
		return "", v
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

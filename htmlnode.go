package vdom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTML converts an encoded node into a golang.org/x/net/html node. The
// stylesheet node becomes a <style> element, text leaves become text nodes,
// a reconciliation key is carried as a data-key attribute. Event bindings
// have no serialized form and are dropped with a trace note; hosts that need
// them should consume the Node tree directly.
func ToHTML(n Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if n.Class != "" {
		h.Attr = append(h.Attr, html.Attribute{Key: "class", Val: n.Class})
	}
	if len(n.Style) > 0 {
		h.Attr = append(h.Attr, html.Attribute{Key: "style", Val: InlineStyle(n)})
	}
	if n.Key != "" {
		h.Attr = append(h.Attr, html.Attribute{Key: "data-key", Val: n.Key})
	}
	if len(n.Events) > 0 {
		tracer().Debugf("dropping %d event binding(s) of <%s> for static HTML", len(n.Events), n.Tag)
	}
	if n.Text != "" {
		h.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, child := range n.Children {
		h.AppendChild(ToHTML(child))
	}
	return h
}

// InlineStyle serializes a node's style declarations into one inline CSS
// attribute value, preserving declaration order.
func InlineStyle(n Node) string {
	decls := make([]string, len(n.Style))
	for i, kv := range n.Style {
		decls[i] = kv.Key + ": " + kv.Value.String()
	}
	return strings.Join(decls, "; ")
}

// Render writes an encoded node sequence as HTML to w.
func Render(w io.Writer, nodes []Node) error {
	for _, n := range nodes {
		if err := html.Render(w, ToHTML(n)); err != nil {
			return err
		}
	}
	return nil
}

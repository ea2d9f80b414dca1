package vdom

import (
	"github.com/npillmayer/vdom/css"
	"github.com/npillmayer/vdom/gfx"
)

// Node is one concrete markup node, ready for a host rendering runtime to
// mount. A Node is a plain value; encoders never share or mutate nodes after
// returning them.
type Node struct {
	Tag      string         // element tag; empty for text leaves
	Text     string         // payload of text leaves and of the stylesheet node
	Class    string         // merged class attribute; empty when no class applies
	Style    []css.KeyValue // inline style declarations, in fixed order
	Key      string         // stable reconciliation key; empty if none
	Events   []Event        // event bindings for the host runtime
	Children []Node
}

// Event is one event binding on a node.
type Event struct {
	Name    string
	Handler gfx.Handler
}

// TextNode creates a leaf node carrying text verbatim.
func TextNode(s string) Node {
	return Node{Text: s}
}

// StyleNode creates a stylesheet node carrying CSS text.
func StyleNode(cssText string) Node {
	return Node{Tag: "style", Text: cssText}
}

// IsText is a predicate for text leaves.
func (n Node) IsText() bool {
	return n.Tag == ""
}

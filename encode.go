package vdom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/vdom/css"
	"github.com/npillmayer/vdom/gfx"
	"github.com/npillmayer/vdom/layout"
	"github.com/npillmayer/vdom/maybe"
)

// Encoder translates abstract graphics trees into concrete markup nodes.
// Its configuration is fixed at construction; an Encoder is stateless and
// may be shared between goroutines.
type Encoder struct {
	tag        string // tag name for every structural node
	rootClass  string // marker class for the outermost node
	stackClass string // marker class for stacked (overlay) groups
	unit       string // suffix appended to numeric measurements
}

// Option configures an Encoder at construction.
type Option func(*Encoder)

// WithTag sets the tag name used for every structural node.
func WithTag(tag string) Option {
	return func(enc *Encoder) { enc.tag = tag }
}

// WithRootClass sets the marker class for the outermost node.
func WithRootClass(class string) Option {
	return func(enc *Encoder) { enc.rootClass = class }
}

// WithStackClass sets the marker class for stacked groups.
func WithStackClass(class string) Option {
	return func(enc *Encoder) { enc.stackClass = class }
}

// WithUnit sets the suffix appended to numeric measurements.
func WithUnit(unit string) Option {
	return func(enc *Encoder) { enc.unit = unit }
}

// New creates an Encoder. Without options it uses tag "div", root class
// "vdom-root", stack class "vdom-stack" and unit "px".
func New(opts ...Option) *Encoder {
	enc := &Encoder{
		tag:        "div",
		rootClass:  "vdom-root",
		stackClass: "vdom-stack",
		unit:       "px",
	}
	for _, opt := range opts {
		opt(enc)
	}
	return enc
}

// Encode translates an abstract graphics tree into a sequence of concrete
// nodes: the kernel stylesheet node first, then the content root. The input
// is wrapped into an implicit root group, which receives the root marker
// class.
//
// Call Encode once per output document. The kernel stylesheet is global to
// the document; emitting it twice invites class collisions in the consuming
// renderer.
func (enc *Encoder) Encode(g gfx.Graphics) []Node {
	tracer().Debugf("encoding graphics tree with tag %q", enc.tag)
	kernel := StyleNode(css.Kernel(enc.tag, enc.rootClass, enc.stackClass, enc.unit))
	root := gfx.IndexedGroup{Attrs: gfx.Attrs(), Children: []gfx.Graphics{g}}
	return []Node{kernel, enc.node(root, true)}
}

// node translates one abstract node, dispatching on the variant tag.
// Recursion terminates at Atomic leaves.
func (enc *Encoder) node(g gfx.Graphics, isRoot bool) Node {
	switch v := g.(type) {
	case gfx.Atomic:
		return TextNode(string(v))
	case gfx.IndexedGroup:
		n := enc.element(v.Attrs, isRoot)
		for _, child := range v.Children {
			n.Children = append(n.Children, enc.node(child, false))
		}
		return n
	case gfx.KeyedGroup:
		n := enc.element(v.Attrs, isRoot)
		for _, kc := range v.Children {
			child := enc.node(kc.Child, false)
			child.Key = kc.Key
			n.Children = append(n.Children, child)
		}
		return n
	}
	tracer().Errorf("unknown graphics variant %T", g)
	return Node{}
}

// element computes the concrete node for a group: structural classes, style
// declarations with defaults elided, and event bindings. Declarations are
// emitted in the field order of layout.Layout, so serialization stays
// deterministic.
func (enc *Encoder) element(attrs gfx.Attributes, isRoot bool) Node {
	n := Node{Tag: enc.tag}
	l := attrs.Layout

	span := func(x layout.Length) css.Property { return css.Span(enc.unit, x) }
	put := func(key string, p maybe.Maybe[css.Property]) {
		var v css.Property
		if match(p, &v) {
			n.Style = append(n.Style, css.KeyValue{Key: key, Value: v})
		}
	}

	put("align-self", maybe.Map(css.Align, maybe.IfNot(layout.Start, l.AlignSelf)))
	put("background-color", maybe.Map(css.Hex, maybe.IfNot(layout.Transparent, l.Background)))

	var border layout.Border
	if match(maybe.IfNot(layout.Border{}, l.Border), &border) {
		n.Style = append(n.Style,
			css.KeyValue{Key: "border-style", Value: "solid"},
			css.KeyValue{Key: "border-color", Value: css.Hex(border.Color)},
			css.KeyValue{Key: "border-width", Value: css.Edges(enc.unit, border.Width)},
			css.KeyValue{Key: "border-radius", Value: css.Radii(enc.unit, border.Radius)},
		)
	}

	put("display", css.Display(l))
	put("flex-direction", flexDirection(l.Direction))

	if !l.FontColor.IsInherit() {
		put("color", maybe.Just(css.Inherited(css.Hex, l.FontColor)))
	}
	if !l.FontFamily.IsInherit() {
		put("font-family", maybe.Just(css.Inherited(css.FontFamily, l.FontFamily)))
	}
	if !l.FontSize.IsInherit() {
		put("font-size", maybe.Just(css.Inherited(func(pt int) css.Property {
			return span(layout.Units(pt))
		}, l.FontSize)))
	}
	if !l.FontWeight.IsInherit() {
		put("font-weight", maybe.Just(css.Inherited(css.FontWeight, l.FontWeight)))
	}

	put("height", maybe.Map(span, maybe.IfNot(layout.Fit(), l.Height)))

	var justify layout.Alignment
	if match(l.Justify, &justify) {
		put("justify-content", maybe.Just(css.Align(justify)))
	}

	put("box-shadow", maybe.Map(func(s layout.Shadow) css.Property {
		return css.BoxShadow(enc.unit, s)
	}, maybe.IfNot(layout.Shadow{}, l.Shadow)))
	put("overflow-x", maybe.Map(css.Overflow, maybe.IfNot(layout.Clip, l.OverflowX)))
	put("overflow-y", maybe.Map(css.Overflow, maybe.IfNot(layout.Clip, l.OverflowY)))
	put("padding", maybe.Map(func(r layout.Rect) css.Property {
		return css.Edges(enc.unit, r)
	}, maybe.IfNot(layout.Rect{}, l.Padding)))
	put("gap", maybe.Map(func(sp int) css.Property {
		return span(layout.Units(sp))
	}, maybe.IfNot(0, l.Spacing)))
	put("text-align", maybe.Map(css.TextAlign, maybe.IfNot(layout.Start, l.TextAlign)))
	put("width", maybe.Map(span, maybe.IfNot(layout.Fit(), l.Width)))

	var onClick gfx.Handler
	if match(attrs.OnClick, &onClick) {
		n.Style = append(n.Style, css.KeyValue{Key: "cursor", Value: "pointer"})
		n.Events = append(n.Events, Event{Name: "click", Handler: onClick})
	}

	n.Class = enc.classes(attrs, l, isRoot)
	return n
}

// classes merges structural marker classes with the caller-supplied class.
// The root marker is attached exactly once, to the implicit root group; the
// stack marker goes on stacked groups only, never on their children.
func (enc *Encoder) classes(attrs gfx.Attributes, l layout.Layout, isRoot bool) string {
	var class string
	if isRoot {
		class = enc.rootClass
	}
	var dir layout.Direction
	if match(l.Direction, &dir) && dir == layout.Stacked {
		class = appendClass(class, enc.stackClass)
	}
	return appendClass(class, attrs.Class)
}

func appendClass(class, more string) string {
	if more == "" {
		return class
	}
	if class == "" {
		return more
	}
	return class + " " + more
}

// flexDirection lifts css.FlexDirection over an optional direction.
func flexDirection(d maybe.Maybe[layout.Direction]) maybe.Maybe[css.Property] {
	var dir layout.Direction
	if match(d, &dir) {
		return css.FlexDirection(dir)
	}
	return maybe.Nothing[css.Property]()
}

// match unwraps a Maybe into v, reporting presence. It tolerates nil Maybes,
// which appear when callers build a Layout as a bare struct literal, and it
// avoids the Match() comparison idiom so that non-comparable payloads (event
// handlers are funcs) can be unwrapped too.
func match[T any](m maybe.Maybe[T], v *T) bool {
	if m == nil || m.IsNothing() {
		return false
	}
	*v = m.WithDefault(*v)
	return true
}

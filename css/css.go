package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/vdom/layout"
	"github.com/npillmayer/vdom/maybe"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. Wrapping the raw string into type
// Property gives call sites a little type safety and a place for helpers.
type Property string

func (p Property) String() string {
	return string(p)
}

// KeyValue is a container for one style declaration.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Value encoders --------------------------------------------------------
//
// All encoders are total over their input domain: every enum variant and
// every numeric field has a defined rendering.

// Align encodes an alignment for cross-axis or content alignment.
func Align(a layout.Alignment) Property {
	switch a {
	case layout.Center:
		return "center"
	case layout.End:
		return "flex-end"
	}
	return "flex-start"
}

// TextAlign encodes an alignment for text. The flex keywords are not valid
// for text-align, so this mapping is separate from Align.
func TextAlign(a layout.Alignment) Property {
	switch a {
	case layout.Center:
		return "center"
	case layout.End:
		return "right"
	}
	return "left"
}

// FlexDirection encodes a layout axis. Stacked yields Nothing: a stacked
// group signals its mode through a structural class, not through an axis
// declaration.
func FlexDirection(d layout.Direction) maybe.Maybe[Property] {
	switch d {
	case layout.Horizontal:
		return maybe.Just[Property]("row")
	case layout.Vertical:
		return maybe.Just[Property]("column")
	}
	return maybe.Nothing[Property]()
}

// Hex encodes a packed RGBA color as 8 zero-padded lowercase hex digits,
// prefixed with '#'.
func Hex(c layout.Color) Property {
	return Property(fmt.Sprintf("#%08x", uint32(c)))
}

// Span encodes a length: the intrinsic-sizing keyword for Fit, or the unit
// count with the configured unit suffix appended.
func Span(unit string, l layout.Length) Property {
	var n int
	switch m := l.Match(); m {
	case m.Units(&n):
		return Property(strconv.Itoa(n) + unit)
	}
	return "fit-content"
}

// Overflow encodes an overflow mode.
func Overflow(o layout.Overflow) Property {
	switch o {
	case layout.Visible:
		return "visible"
	case layout.Scroll:
		return "scroll"
	}
	return "hidden"
}

// FontFamily encodes a font stack: family names in order, the generic
// fallback appended last.
func FontFamily(f layout.Font) Property {
	names := make([]string, 0, len(f.Families)+1)
	names = append(names, f.Families...)
	names = append(names, GenericName(f.Generic))
	return Property(strings.Join(names, ", "))
}

// GenericName returns the CSS keyword for a generic font family.
func GenericName(g layout.Generic) string {
	switch g {
	case layout.Serif:
		return "serif"
	case layout.Monospace:
		return "monospace"
	}
	return "sans-serif"
}

// FontWeight encodes a numeric font weight.
func FontWeight(w layout.Weight) Property {
	return Property(strconv.Itoa(int(w)))
}

// Inherited encodes an inheritable property: the inherit keyword, or the
// wrapped encoder applied to the own value.
func Inherited[T any](enc func(T) Property, h layout.Inheritable[T]) Property {
	var v T
	switch m := h.Match(); m {
	case m.Own(&v):
		return enc(v)
	}
	return "inherit"
}

// Edges encodes a rect as exactly 4 space-joined measures in the fixed
// order top, right, bottom, left.
func Edges(unit string, r layout.Rect) Property {
	return Property(strings.Join([]string{
		strconv.Itoa(r.Top) + unit,
		strconv.Itoa(r.Right) + unit,
		strconv.Itoa(r.Bottom) + unit,
		strconv.Itoa(r.Left) + unit,
	}, " "))
}

// Radii encodes corner radii as exactly 4 space-joined measures in the fixed
// order top-left, top-right, bottom-right, bottom-left.
func Radii(unit string, c layout.Corners) Property {
	return Property(strings.Join([]string{
		strconv.Itoa(c.TopLeft) + unit,
		strconv.Itoa(c.TopRight) + unit,
		strconv.Itoa(c.BottomRight) + unit,
		strconv.Itoa(c.BottomLeft) + unit,
	}, " "))
}

// BoxShadow encodes an outer shadow in the fixed field order x-offset,
// y-offset, blur, spread, color.
func BoxShadow(unit string, s layout.Shadow) Property {
	return Property(strings.Join([]string{
		strconv.Itoa(s.DX) + unit,
		strconv.Itoa(s.DY) + unit,
		strconv.Itoa(s.Blur) + unit,
		strconv.Itoa(s.Spread) + unit,
		string(Hex(s.Color)),
	}, " "))
}

// Display yields the flex-container trigger declaration when either the
// layout's direction or its justification is explicitly set. Nodes with
// neither set keep the kernel's block layout; alignSelf, spacing and
// overflow deliberately do not trigger flex.
func Display(l layout.Layout) maybe.Maybe[Property] {
	if present(l.Direction) || present(l.Justify) {
		return maybe.Just[Property]("flex")
	}
	return maybe.Nothing[Property]()
}

// present is a nil-tolerant check for Maybe-valued layout fields: a Layout
// built as a plain struct literal leaves them nil, which reads as absent.
func present[T any](m maybe.Maybe[T]) bool {
	return m != nil && !m.IsNothing()
}

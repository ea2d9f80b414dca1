package layout

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Alignment positions a node or its content along an axis.
type Alignment uint8

// Alignment values.
const (
	Start Alignment = iota
	Center
	End
)

// Direction is the layout axis of a group.
//
// Stacked is special: children are layered on top of one another instead of
// flowing along an axis. A stacked group receives a structural marker class
// instead of an explicit axis declaration.
type Direction uint8

// Direction values.
const (
	Horizontal Direction = iota
	Vertical
	Stacked
)

// Overflow controls how content exceeding a node's bounds is handled.
// Clip is the baseline behavior established by the kernel stylesheet.
type Overflow uint8

// Overflow values.
const (
	Clip Overflow = iota
	Visible
	Scroll
)

// Color is a packed RGBA value, 0xRRGGBBAA.
type Color uint32

// Transparent is the zero color, fully transparent black.
const Transparent Color = 0

// --- Length ------------------------------------------------------------

/*
type Length
	= Fit
	| Units Int
*/

// Length is an option type for one-dimensional measures: either intrinsic
// ("fit contents") or an explicit count of configured units.
type Length struct {
	n        int
	explicit bool
}

// Fit creates an intrinsic length, sized by the node's contents.
func Fit() Length {
	return Length{}
}

// Units creates an explicit length of n configured units.
func Units(n int) Length {
	return Length{n: n, explicit: true}
}

// Match returns a pattern-matcher for the two constructors of a Length:
//
//     var n int
//     switch m := l.Match(); m {
//     case m.Units(&n):
//     case m.Fit():
//     }
//
func (l Length) Match() *LengthMatcher {
	return &LengthMatcher{length: l}
}

// LengthMatcher is a helper for pattern-matching a Length.
type LengthMatcher struct {
	length Length
}

// Fit matches an intrinsic length.
func (m *LengthMatcher) Fit() *LengthMatcher {
	if !m.length.explicit {
		return m
	}
	return nil
}

// Units matches an explicit length, capturing the unit count.
func (m *LengthMatcher) Units(n *int) *LengthMatcher {
	if m.length.explicit {
		if n != nil {
			*n = m.length.n
		}
		return m
	}
	return nil
}

// --- Compound measures -------------------------------------------------

// Rect holds four independent edge measures. Field order is the fixed
// serialization order: top, right, bottom, left.
type Rect struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Sides creates a Rect from edge measures in top, right, bottom, left order.
func Sides(top, right, bottom, left int) Rect {
	return Rect{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Uniform creates a Rect with the same measure on every edge.
func Uniform(n int) Rect {
	return Rect{Top: n, Right: n, Bottom: n, Left: n}
}

// Corners holds four independent corner radii. Field order is the fixed
// serialization order: top-left, top-right, bottom-right, bottom-left.
type Corners struct {
	TopLeft     int
	TopRight    int
	BottomRight int
	BottomLeft  int
}

// Radius creates Corners with the same radius on every corner.
func Radius(n int) Corners {
	return Corners{TopLeft: n, TopRight: n, BottomRight: n, BottomLeft: n}
}

// Border describes a node's border: one color, per-edge widths and per-corner
// radii. The zero Border draws nothing.
type Border struct {
	Color  Color
	Width  Rect
	Radius Corners
}

// Shadow describes an outer shadow. Field order is the fixed serialization
// order: x-offset, y-offset, blur, spread, color. The zero Shadow draws
// nothing.
type Shadow struct {
	DX     int
	DY     int
	Blur   int
	Spread int
	Color  Color
}

// --- Fonts ---------------------------------------------------------------

// Generic is a generic font family, used as the last-resort fallback of a
// font stack.
type Generic uint8

// Generic font families.
const (
	SansSerif Generic = iota
	Serif
	Monospace
)

// Font is an ordered stack of font family names plus a generic fallback.
type Font struct {
	Families []string
	Generic  Generic
}

// Weight is a numeric font weight (100…900).
type Weight int

// Common font weights.
const (
	Normal Weight = 400
	Bold   Weight = 700
)

// --- Inheritable ---------------------------------------------------------

/*
type Inheritable a
	= Inherit
	| Own a
*/

// Inheritable is a two-case sum type for font properties: either inherit the
// ancestor's resolved value, or declare an own value. This is deliberately
// not a nullable-with-sentinel: "field absent" and "explicitly inherit" stay
// distinct notions (an absent field merely happens to default to Inherit).
type Inheritable[T any] struct {
	own   T
	isOwn bool
}

// Inherit takes the ancestor's resolved value.
func Inherit[T any]() Inheritable[T] {
	return Inheritable[T]{}
}

// Own declares an explicit value.
func Own[T any](x T) Inheritable[T] {
	return Inheritable[T]{own: x, isOwn: true}
}

// IsInherit is a predicate for the Inherit case.
func (h Inheritable[T]) IsInherit() bool {
	return !h.isOwn
}

// Match returns a pattern-matcher for the two constructors:
//
//     var v T
//     switch m := h.Match(); m {
//     case m.Own(&v):
//     case m.Inherit():
//     }
//
func (h Inheritable[T]) Match() *InheritableMatcher[T] {
	return &InheritableMatcher[T]{h: h}
}

// InheritableMatcher is a helper for pattern-matching an Inheritable.
type InheritableMatcher[T any] struct {
	h Inheritable[T]
}

// Inherit matches the inherit case.
func (m *InheritableMatcher[T]) Inherit() *InheritableMatcher[T] {
	if !m.h.isOwn {
		return m
	}
	return nil
}

// Own matches an explicit value, capturing it.
func (m *InheritableMatcher[T]) Own(v *T) *InheritableMatcher[T] {
	if m.h.isOwn {
		if v != nil {
			*v = m.h.own
		}
		return m
	}
	return nil
}

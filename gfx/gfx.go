package gfx

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/vdom/layout"
	"github.com/npillmayer/vdom/maybe"
)

/*
type Graphics
	= Atomic String
	| IndexedGroup Attributes (List Graphics)
	| KeyedGroup Attributes (List (String, Graphics))
*/

// Graphics is the abstract tree handed to the encoder: a tagged union of an
// atomic leaf, a positionally-identified group, and a key-identified group.
// Encoding dispatches on the variant tag; there is no inheritance involved.
type Graphics interface {
	variant()
}

// Atomic is an opaque leaf value, e.g. a run of text. The encoder carries it
// into the output verbatim.
type Atomic string

// IndexedGroup is a group whose children are identified by their position.
type IndexedGroup struct {
	Attrs    Attributes
	Children []Graphics
}

// KeyedGroup is a group whose children carry stable keys, so the consuming
// renderer can reconcile reordered children without rebuilding them.
type KeyedGroup struct {
	Attrs    Attributes
	Children []KeyedChild
}

// KeyedChild pairs a stable key with a child.
type KeyedChild struct {
	Key   string
	Child Graphics
}

func (Atomic) variant()       {}
func (IndexedGroup) variant() {}
func (KeyedGroup) variant()   {}

// --- Constructors ----------------------------------------------------------

// Text creates an atomic text leaf.
func Text(s string) Graphics {
	return Atomic(s)
}

// Group creates a positionally-identified group.
func Group(attrs Attributes, children ...Graphics) Graphics {
	return IndexedGroup{Attrs: attrs, Children: children}
}

// GroupKeyed creates a key-identified group.
func GroupKeyed(attrs Attributes, children ...KeyedChild) Graphics {
	return KeyedGroup{Attrs: attrs, Children: children}
}

// Keyed pairs a child with its stable key.
func Keyed(key string, child Graphics) KeyedChild {
	return KeyedChild{Key: key, Child: child}
}

// --- Attributes --------------------------------------------------------------

// Handler is a callback bound to a UI event. Invoking it is the host
// runtime's business; the encoder only records the binding.
type Handler func()

// Attributes is everything attached to one group node: its layout, an
// optional caller-supplied class, and event bindings.
type Attributes struct {
	Layout  layout.Layout
	Class   string
	OnClick maybe.Maybe[Handler]
}

// Attrs returns Attributes with an all-default layout and no bindings.
func Attrs() Attributes {
	return Attributes{
		Layout:  layout.Default(),
		OnClick: maybe.Nothing[Handler](),
	}
}

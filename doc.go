/*
Package vdom encodes an abstract, declarative description of a UI tree into a
concrete markup tree: virtual-DOM nodes carrying inline CSS declarations,
preceded by a baseline "kernel" stylesheet node.

The abstract side (package gfx) knows three node variants — an atomic text
leaf, a positionally-identified group and a key-identified group — each group
carrying layout attributes (package layout). The encoder walks that tree,
translates every layout property to a CSS fragment (package css), elides
properties holding their documented default, and derives structural marker
classes for the root node and for stacked (overlay) groups.

The whole transform is a pure function: no I/O, no shared state, same input
and configuration always yield the same output. It is safe to call from any
number of goroutines.

Status

Early draft—API may change frequently. Please stay patient.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vdom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'vdom'.
func tracer() tracing.Trace {
	return tracing.Select("vdom")
}

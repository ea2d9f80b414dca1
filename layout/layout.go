package layout

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "github.com/npillmayer/vdom/maybe"

// Layout is the record of presentation properties attached to one node of
// the abstract graphics tree. Every field has a documented default; a field
// holding its default renders identically to the field being absent, which
// lets the encoder elide defaults from serialized output.
//
// Field order is the fixed order of emitted style declarations.
//
// Defaults:
//
//     AlignSelf   Start
//     Background  Transparent
//     Border      zero Border (no border)
//     Direction   Nothing (no explicit axis)
//     FontColor   Inherit
//     FontFamily  Inherit
//     FontSize    Inherit
//     FontWeight  Inherit
//     Height      Fit
//     Justify     Nothing (no explicit justification)
//     Shadow      zero Shadow (no shadow)
//     OverflowX   Clip
//     OverflowY   Clip
//     Padding     zero Rect
//     Spacing     0
//     TextAlign   Start
//     Width       Fit
//
// Direction and Justify are genuine options rather than defaulted values:
// their presence (not just their value) drives the flex-container heuristic.
type Layout struct {
	AlignSelf  Alignment
	Background Color
	Border     Border
	Direction  maybe.Maybe[Direction]
	FontColor  Inheritable[Color]
	FontFamily Inheritable[Font]
	FontSize   Inheritable[int]
	FontWeight Inheritable[Weight]
	Height     Length
	Justify    maybe.Maybe[Alignment]
	Shadow     Shadow
	OverflowX  Overflow
	OverflowY  Overflow
	Padding    Rect
	Spacing    int
	TextAlign  Alignment
	Width      Length
}

// Default returns a Layout with every field at its documented default.
func Default() Layout {
	return Layout{
		Direction: maybe.Nothing[Direction](),
		Justify:   maybe.Nothing[Alignment](),
	}
}

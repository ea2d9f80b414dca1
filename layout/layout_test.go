package layout_test

import (
	"testing"

	"github.com/npillmayer/vdom/layout"
)

func TestLengthBasic(t *testing.T) {
	ten := layout.Units(10)
	var n int
	switch m := ten.Match(); m {
	case m.Units(&n):
		t.Logf("n = %d", n)
	default:
		t.Errorf("expected Units(10) to be an explicit length, isn't: %#v", ten)
	}
	if n != 10 {
		t.Errorf("expected n to be 10, is %d", n)
	}

	fit := layout.Fit()
	switch m := fit.Match(); m {
	case m.Fit():
		t.Logf("length is fit")
	default:
		t.Errorf("expected Fit() to match the fit case, doesn't: %#v", fit)
	}
}

func TestLengthZeroValueIsFit(t *testing.T) {
	var l layout.Length
	switch m := l.Match(); m {
	case m.Fit():
	default:
		t.Errorf("expected zero Length to be Fit, isn't: %#v", l)
	}
	if l != layout.Fit() {
		t.Error("expected zero Length to equal Fit(), doesn't")
	}
}

func TestInheritableBasic(t *testing.T) {
	inh := layout.Inherit[layout.Color]()
	if !inh.IsInherit() {
		t.Error("expected Inherit() to be the inherit case, isn't")
	}

	own := layout.Own(layout.Color(0xff0000ff))
	var c layout.Color
	switch m := own.Match(); m {
	case m.Own(&c):
		t.Logf("c = %08x", uint32(c))
	case m.Inherit():
		t.Error("expected Own(red) to carry a value, is inherit")
	}
	if c != 0xff0000ff {
		t.Errorf("expected c to be ff0000ff, is %08x", uint32(c))
	}
}

func TestInheritableZeroValueIsInherit(t *testing.T) {
	var f layout.Inheritable[layout.Font]
	if !f.IsInherit() {
		t.Error("expected zero Inheritable to be Inherit, isn't")
	}
}

func TestRectConstructors(t *testing.T) {
	r := layout.Sides(1, 2, 3, 4)
	if r.Top != 1 || r.Right != 2 || r.Bottom != 3 || r.Left != 4 {
		t.Errorf("expected edges in top/right/bottom/left order, got %#v", r)
	}
	u := layout.Uniform(5)
	if u != layout.Sides(5, 5, 5, 5) {
		t.Errorf("expected Uniform(5) to set every edge to 5, got %#v", u)
	}
}

func TestDefaultLayout(t *testing.T) {
	d := layout.Default()
	if d.AlignSelf != layout.Start {
		t.Error("expected default alignment to be Start, isn't")
	}
	if d.Background != layout.Transparent {
		t.Error("expected default background to be transparent, isn't")
	}
	if !d.Direction.IsNothing() {
		t.Error("expected default direction to be absent, isn't")
	}
	if !d.Justify.IsNothing() {
		t.Error("expected default justification to be absent, isn't")
	}
	if !d.FontColor.IsInherit() || !d.FontFamily.IsInherit() ||
		!d.FontSize.IsInherit() || !d.FontWeight.IsInherit() {
		t.Error("expected default font properties to inherit, don't")
	}
	if d.Width != layout.Fit() || d.Height != layout.Fit() {
		t.Error("expected default sizing to be fit-content, isn't")
	}
	if d.OverflowX != layout.Clip || d.OverflowY != layout.Clip {
		t.Error("expected default overflow to clip, doesn't")
	}
}

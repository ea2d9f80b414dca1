package css_test

import (
	"strings"
	"testing"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/vdom/css"
	"github.com/stretchr/testify/require"
)

func TestKernelSubstitution(t *testing.T) {
	k := css.Kernel("span", "my-root", "my-stack", "rem")
	require.Contains(t, k, "span.my-root", "root class rule missing")
	require.Contains(t, k, "span.my-stack > span", "stack child rule missing")
	require.Contains(t, k, "font-size: 16rem", "unit suffix not substituted")
	require.NotContains(t, k, "{{", "unexpanded template action in kernel")
}

func TestKernelIsWellFormedCSS(t *testing.T) {
	k := css.Kernel("div", "vdom-root", "vdom-stack", "px")
	sheet, err := parser.Parse(k)
	require.NoError(t, err, "kernel must parse as CSS")
	require.Len(t, sheet.Rules, 4, "kernel rule count")

	reset := sheet.Rules[0]
	require.Equal(t, "div", strings.TrimSpace(reset.Prelude))
	decls := make(map[string]string)
	for _, d := range reset.Declarations {
		decls[d.Property] = d.Value
	}
	require.Equal(t, "hidden", decls["overflow"], "structural nodes must clip")
	require.Equal(t, "fit-content", decls["width"], "structural nodes size intrinsically")
	require.Equal(t, "fit-content", decls["height"], "structural nodes size intrinsically")
	require.Equal(t, "0", decls["margin"])
	require.Equal(t, "0", decls["padding"])

	root := sheet.Rules[1]
	require.Equal(t, "div.vdom-root", strings.TrimSpace(root.Prelude))
	var hasFont, hasColor bool
	for _, d := range root.Declarations {
		switch d.Property {
		case "font-family", "font-size":
			hasFont = true
		case "color":
			hasColor = true
		}
	}
	require.True(t, hasFont, "root class must fix the base font")
	require.True(t, hasColor, "root class must fix the text color")

	require.Equal(t, "div.vdom-stack > div", strings.TrimSpace(sheet.Rules[2].Prelude))
	require.Equal(t, "div.vdom-stack > div:first-child", strings.TrimSpace(sheet.Rules[3].Prelude))
}

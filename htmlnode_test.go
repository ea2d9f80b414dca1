package vdom_test

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/vdom"
	"github.com/npillmayer/vdom/gfx"
	"github.com/npillmayer/vdom/layout"
	"github.com/npillmayer/vdom/maybe"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func renderToDoc(t *testing.T, nodes []vdom.Node) *html.Node {
	t.Helper()
	var b strings.Builder
	require.NoError(t, vdom.Render(&b, nodes))
	t.Logf("html = %s", b.String())
	doc, err := html.Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc
}

func TestRenderedDocumentStructure(t *testing.T) {
	enc := vdom.New()
	attrs := gfx.Attrs()
	attrs.Layout.Direction = maybe.Just(layout.Stacked)
	g := gfx.Group(attrs, gfx.Text("under"), gfx.Text("over"))
	doc := renderToDoc(t, enc.Encode(g))

	roots := cascadia.MustCompile("div.vdom-root").MatchAll(doc)
	require.Len(t, roots, 1, "exactly one root-classed node")

	stacks := cascadia.MustCompile("div.vdom-stack").MatchAll(doc)
	require.Len(t, stacks, 1, "exactly one stack-classed node")

	sheets := cascadia.MustCompile("style").MatchAll(doc)
	require.Len(t, sheets, 1, "exactly one stylesheet element")
	require.Contains(t, sheets[0].FirstChild.Data, "div.vdom-root")
}

func TestRenderedInlineStyle(t *testing.T) {
	enc := vdom.New()
	attrs := gfx.Attrs()
	attrs.Layout.Background = 0xff0000ff
	attrs.Layout.Width = layout.Units(100)
	doc := renderToDoc(t, enc.Encode(gfx.Group(attrs, gfx.Text("x"))))

	div := cascadia.MustCompile("div.vdom-root > div").MatchFirst(doc)
	require.NotNil(t, div)
	var style string
	for _, a := range div.Attr {
		if a.Key == "style" {
			style = a.Val
		}
	}
	require.Equal(t, "background-color: #ff0000ff; width: 100px", style)
}

func TestRenderedKeyAttribute(t *testing.T) {
	enc := vdom.New()
	g := gfx.GroupKeyed(gfx.Attrs(),
		gfx.Keyed("k1", gfx.Group(gfx.Attrs(), gfx.Text("a"))),
		gfx.Keyed("k2", gfx.Group(gfx.Attrs(), gfx.Text("b"))))
	doc := renderToDoc(t, enc.Encode(g))

	k1 := cascadia.MustCompile(`div[data-key="k1"]`).MatchAll(doc)
	require.Len(t, k1, 1)
	k2 := cascadia.MustCompile(`div[data-key="k2"]`).MatchAll(doc)
	require.Len(t, k2, 1)
}

func TestConfiguredTagInOutput(t *testing.T) {
	enc := vdom.New(vdom.WithTag("span"))
	doc := renderToDoc(t, enc.Encode(gfx.Text("x")))

	spans := cascadia.MustCompile("span.vdom-root").MatchAll(doc)
	require.Len(t, spans, 1, "configured tag used for structural nodes")
}

package css

import (
	"strings"
	"text/template"
)

// The kernel is the fixed baseline stylesheet emitted once per encoded
// document, ahead of the content. It establishes the ground rules every
// structural node builds on:
//
//   - structural nodes reset to block-like intrinsic sizing with clipped
//     overflow and no margin or padding,
//   - the root class fixes the base font and text color,
//   - children of a stack-class node are absolutely positioned, except the
//     first child, which stays in flow as the positioning reference.
//
// Tag name, class names and the unit suffix are substituted from the
// encoder configuration.
var kernelTmpl = template.Must(template.New("kernel").Parse(strings.TrimLeft(`
{{.Tag}} {
  box-sizing: border-box;
  display: block;
  position: relative;
  margin: 0;
  padding: 0;
  border: none;
  width: fit-content;
  height: fit-content;
  overflow: hidden;
}
{{.Tag}}.{{.Root}} {
  font-family: sans-serif;
  font-size: 16{{.Unit}};
  color: #000000ff;
}
{{.Tag}}.{{.Stack}} > {{.Tag}} {
  position: absolute;
}
{{.Tag}}.{{.Stack}} > {{.Tag}}:first-child {
  position: relative;
}
`, "\n")))

type kernelParams struct {
	Tag   string
	Root  string
	Stack string
	Unit  string
}

// Kernel renders the baseline stylesheet for a given configuration.
// Consumers must emit it exactly once per document: the rules are global,
// and emitting them twice invites class collisions in the host renderer.
func Kernel(tag, rootClass, stackClass, unit string) string {
	var b strings.Builder
	err := kernelTmpl.Execute(&b, kernelParams{
		Tag:   tag,
		Root:  rootClass,
		Stack: stackClass,
		Unit:  unit,
	})
	if err != nil {
		panic(err)
	}
	return b.String()
}

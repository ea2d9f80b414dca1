package vdom

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump returns a human-readable tree rendering of an encoded node sequence,
// intended for debugging and test failure output.
func Dump(nodes []Node) string {
	tp := treeprint.New()
	for _, n := range nodes {
		dumpNode(tp, n)
	}
	return tp.String()
}

func dumpNode(br treeprint.Tree, n Node) {
	label := nodeLabel(n)
	if len(n.Children) == 0 {
		if n.Key != "" {
			br.AddMetaNode(n.Key, label)
		} else {
			br.AddNode(label)
		}
		return
	}
	var sub treeprint.Tree
	if n.Key != "" {
		sub = br.AddMetaBranch(n.Key, label)
	} else {
		sub = br.AddBranch(label)
	}
	for _, child := range n.Children {
		dumpNode(sub, child)
	}
}

func nodeLabel(n Node) string {
	if n.IsText() {
		return fmt.Sprintf("#text %q", n.Text)
	}
	label := "<" + n.Tag + ">"
	if n.Class != "" {
		label += " ." + n.Class
	}
	if len(n.Style) > 0 {
		label += fmt.Sprintf(" {%s}", InlineStyle(n))
	}
	for _, ev := range n.Events {
		label += " @" + ev.Name
	}
	return label
}

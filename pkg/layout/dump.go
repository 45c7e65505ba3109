package layout

import (
	"fmt"

	"github.com/xlab/treeprint"

	"wisp/pkg/html"
)

// DumpView renders the layout tree with the geometry each object was
// assigned. Used by the CLI dump mode and by tests for failure output.
func DumpView(v *LayoutView) string {
	if v.root == nil {
		return "(empty view)\n"
	}
	tree := treeprint.New()
	tree.SetValue(objectLabel(v.root))
	addObjects(tree, v.root.firstChild)
	return tree.String()
}

func addObjects(branch treeprint.Tree, o *LayoutObject) {
	for ; o != nil; o = o.nextSibling {
		sub := branch.AddBranch(objectLabel(o))
		addObjects(sub, o.firstChild)
	}
}

func objectLabel(o *LayoutObject) string {
	name := "?"
	switch o.node.Kind() {
	case html.ElementNode:
		name = "<" + o.node.Element().Kind.String() + ">"
	case html.TextNode:
		name = fmt.Sprintf("%q", o.node.Text())
	}
	return fmt.Sprintf("%s %s at (%d,%d) size %dx%d",
		kindName(o.kind), name, o.point.X, o.point.Y, o.size.Width, o.size.Height)
}

func kindName(k LayoutObjectKind) string {
	switch k {
	case LayoutObjectBlock:
		return "block"
	case LayoutObjectInline:
		return "inline"
	case LayoutObjectText:
		return "text"
	}
	return "unknown"
}

package html

import (
	"strconv"

	"github.com/xlab/treeprint"
)

// DumpTree renders the node tree as an indented listing, one node per
// branch. Used by the CLI dump mode and by tests for failure output.
func DumpTree(root *Node) string {
	tree := treeprint.New()
	tree.SetValue(nodeLabel(root))
	addChildren(tree, root)
	return tree.String()
}

func addChildren(branch treeprint.Tree, n *Node) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		sub := branch.AddBranch(nodeLabel(child))
		addChildren(sub, child)
	}
}

func nodeLabel(n *Node) string {
	switch n.Kind() {
	case DocumentNode:
		return "#document"
	case TextNode:
		return strconv.Quote(n.Text())
	default:
		label := "<" + n.element.Kind.String()
		for _, a := range n.element.Attributes {
			label += " " + a.Name + "=" + strconv.Quote(a.Value)
		}
		return label + ">"
	}
}

package layout

import (
	"wisp/pkg/css"
	"wisp/pkg/html"
)

// createLayoutObject builds the layout object for one document node, or nil
// when the node generates no box (no node, or display resolved to none).
func createLayoutObject(node *html.Node, parent *LayoutObject, sheet *css.StyleSheet) *LayoutObject {
	if node == nil {
		return nil
	}
	obj := NewLayoutObject(node, parent)
	obj.CascadeStyle(sheet)
	if obj.style.Display() == css.DisplayNone {
		return nil
	}
	obj.UpdateKind()
	return obj
}

// buildLayoutTree mirrors the document subtree rooted at node into layout
// objects. Nodes whose display is none vanish together with their subtree;
// their siblings take their place at the same level.
func buildLayoutTree(node *html.Node, parent *LayoutObject, sheet *css.StyleSheet) *LayoutObject {
	target := node
	obj := createLayoutObject(target, parent, sheet)
	for obj == nil {
		if target == nil {
			return nil
		}
		target = target.NextSibling()
		obj = createLayoutObject(target, parent, sheet)
	}
	obj.firstChild = buildLayoutTree(target.FirstChild(), obj, sheet)
	obj.nextSibling = buildLayoutTree(target.NextSibling(), parent, sheet)
	return obj
}

// LayoutView is the layout tree for one document, rooted at the body
// element. A document without a body yields an empty view.
type LayoutView struct {
	root *LayoutObject
}

func NewLayoutView(root *html.Node, sheet *css.StyleSheet) *LayoutView {
	body := html.FindElementByKind(root, html.ElementKindBody)
	view := &LayoutView{root: buildLayoutTree(body, nil, sheet)}
	view.UpdateLayout()
	return view
}

func (v *LayoutView) Root() *LayoutObject { return v.root }

// UpdateLayout recomputes every size and position from scratch. Running it
// again on an unchanged tree leaves the geometry untouched.
func (v *LayoutView) UpdateLayout() {
	if v.root == nil {
		return
	}
	v.root.computeSize(Size{Width: ContentAreaWidth})
	v.root.computePosition(Point{X: 0, Y: 0}, LayoutObjectBlock, nil, nil)
}

package layout

import (
	"wisp/pkg/css"
	"wisp/pkg/html"
)

// LayoutObjectKind distinguishes the three flows a layout node can take
// part in: block boxes stack vertically, inline boxes flow horizontally,
// and text boxes are inline boxes that also wrap.
type LayoutObjectKind int

const (
	LayoutObjectBlock LayoutObjectKind = iota
	LayoutObjectInline
	LayoutObjectText
)

type Point struct {
	X int
	Y int
}

type Size struct {
	Width  int
	Height int
}

// LayoutObject is one node of the layout tree. It mirrors a document node
// that generates a box, carries that node's computed style, and records the
// geometry the layout passes assign.
type LayoutObject struct {
	kind        LayoutObjectKind
	node        *html.Node
	firstChild  *LayoutObject
	nextSibling *LayoutObject
	parent      *LayoutObject

	style *css.ComputedStyle
	point Point
	size  Size
}

// NewLayoutObject wraps a document node in a fresh layout object. The kind
// starts as block and is settled by UpdateKind once the style is resolved.
func NewLayoutObject(node *html.Node, parent *LayoutObject) *LayoutObject {
	return &LayoutObject{
		kind:   LayoutObjectBlock,
		node:   node,
		parent: parent,
		style:  css.NewComputedStyle(),
	}
}

func (o *LayoutObject) Kind() LayoutObjectKind     { return o.kind }
func (o *LayoutObject) Node() *html.Node           { return o.node }
func (o *LayoutObject) FirstChild() *LayoutObject  { return o.firstChild }
func (o *LayoutObject) NextSibling() *LayoutObject { return o.nextSibling }
func (o *LayoutObject) Parent() *LayoutObject      { return o.parent }
func (o *LayoutObject) Style() *css.ComputedStyle  { return o.style }
func (o *LayoutObject) Point() Point               { return o.point }
func (o *LayoutObject) Size() Size                 { return o.size }

// CascadeStyle applies every rule in the sheet whose selector matches this
// object's node, in sheet order, then resolves the remaining properties
// against the parent's style.
func (o *LayoutObject) CascadeStyle(sheet *css.StyleSheet) {
	for _, rule := range sheet.Rules {
		if css.Matches(o.node, rule.Selector) {
			o.style.Cascade(rule.Declarations)
		}
	}
	var parentStyle *css.ComputedStyle
	if o.parent != nil {
		parentStyle = o.parent.style
	}
	o.style.Defaulting(o.node, parentStyle)
}

// UpdateKind settles the object's kind from its resolved display. It must
// not be called on a node whose display is none; such nodes never get a
// layout object.
func (o *LayoutObject) UpdateKind() {
	if o.node.Kind() == html.DocumentNode {
		panic("layout: document node cannot be a layout object")
	}
	switch o.style.Display() {
	case css.DisplayBlock:
		o.kind = LayoutObjectBlock
	case css.DisplayInline:
		o.kind = LayoutObjectInline
	case css.DisplayNone:
		panic("layout: display none node in the layout tree")
	}
	if o.node.Kind() == html.TextNode {
		o.kind = LayoutObjectText
	}
}

// fontSizeRatio is the integer scale of a glyph relative to medium.
func fontSizeRatio(f css.FontSize) int {
	switch f {
	case css.FontSizeXXLarge:
		return 3
	case css.FontSizeXLarge:
		return 2
	}
	return 1
}

// computeSize fills in the object's size bottom-up. Children are sized
// first against this object's width; then the object derives its own size
// from its kind and its children.
func (o *LayoutObject) computeSize(parentSize Size) {
	size := Size{}

	switch o.kind {
	case LayoutObjectBlock:
		size.Width = parentSize.Width
	}

	for child := o.firstChild; child != nil; child = child.nextSibling {
		child.computeSize(size)
	}

	switch o.kind {
	case LayoutObjectBlock:
		// A block is as tall as its children stacked, counting each
		// child once per vertical step: an inline run between blocks
		// contributes only once.
		height := 0
		var previous *LayoutObject
		for child := o.firstChild; child != nil; child = child.nextSibling {
			if child.kind == LayoutObjectBlock || previous == nil || previous.kind == LayoutObjectBlock {
				height += child.size.Height
			}
			previous = child
		}
		size.Height = height
	case LayoutObjectInline:
		// An inline box wraps its children laid end to end.
		for child := o.firstChild; child != nil; child = child.nextSibling {
			size.Width += child.size.Width
			size.Height += child.size.Height
		}
	case LayoutObjectText:
		ratio := fontSizeRatio(o.style.FontSize())
		chars := len([]rune(o.node.Text()))
		width := chars * CharWidth * ratio
		if width > ContentAreaWidth {
			// Too wide for one line: wrap to the content width and
			// make room for every resulting line.
			size.Width = ContentAreaWidth
			lines := width / ContentAreaWidth
			if width%ContentAreaWidth != 0 {
				lines++
			}
			size.Height = CharHeightWithPadding * ratio * lines
		} else {
			size.Width = width
			size.Height = CharHeightWithPadding * ratio
		}
	}

	o.size = size
}

// computePosition places the object relative to its parent and the sibling
// laid out just before it. The pass is idempotent: positions depend only on
// sizes and earlier positions, never on previous results of this pass.
func (o *LayoutObject) computePosition(parentPoint Point, previousKind LayoutObjectKind, previousPoint *Point, previousSize *Size) {
	point := Point{}

	switch {
	case o.kind == LayoutObjectBlock || previousKind == LayoutObjectBlock:
		// A new vertical step: below the previous sibling, or at the
		// parent's top when there is none.
		point.X = parentPoint.X
		if previousPoint != nil && previousSize != nil {
			point.Y = previousPoint.Y + previousSize.Height
		} else {
			point.Y = parentPoint.Y
		}
	case previousPoint != nil && previousSize != nil:
		// Continuing an inline run: to the right of the previous box.
		point.X = previousPoint.X + previousSize.Width
		point.Y = previousPoint.Y
	default:
		point = parentPoint
	}

	o.point = point

	if child := o.firstChild; child != nil {
		child.computePosition(point, o.kind, nil, nil)
	}
	if sibling := o.nextSibling; sibling != nil {
		sibling.computePosition(parentPoint, o.kind, &point, &o.size)
	}
}

package html

import "fmt"

type NodeKind int

const (
	DocumentNode NodeKind = iota
	ElementNode
	TextNode
)

type ElementKind int

const (
	ElementKindHTML ElementKind = iota
	ElementKindHead
	ElementKindStyle
	ElementKindScript
	ElementKindBody
	ElementKindP
	ElementKindH1
	ElementKindH2
	ElementKindA
)

var elementKindNames = map[ElementKind]string{
	ElementKindHTML:   "html",
	ElementKindHead:   "head",
	ElementKindStyle:  "style",
	ElementKindScript: "script",
	ElementKindBody:   "body",
	ElementKindP:      "p",
	ElementKindH1:     "h1",
	ElementKindH2:     "h2",
	ElementKindA:      "a",
}

func (k ElementKind) String() string {
	if name, ok := elementKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ElementKind(%d)", int(k))
}

// ElementKindFromString maps a lower-cased tag name to its element kind.
// Tag names outside the supported set are an error; the tree constructor
// skips such tags instead of inserting them.
func ElementKindFromString(tag string) (ElementKind, error) {
	for kind, name := range elementKindNames {
		if name == tag {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unsupported element name %q", tag)
}

type Element struct {
	Kind       ElementKind
	Attributes []Attribute
}

func NewElement(kind ElementKind, attributes []Attribute) *Element {
	return &Element{Kind: kind, Attributes: attributes}
}

// Attribute returns the value of the named attribute.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Node is one node of the document tree. The first-child and next-sibling
// links are the owning edges: following them from a node visits each child
// exactly once in document order. Parent, last-child and previous-sibling
// are non-owning lookup caches and are never followed by owning traversals,
// so the back-references cannot form an owning cycle.
type Node struct {
	kind    NodeKind
	element *Element // set for ElementNode
	text    string   // set for TextNode

	parent          *Node
	firstChild      *Node
	lastChild       *Node
	previousSibling *Node
	nextSibling     *Node
}

func NewDocumentNode() *Node {
	return &Node{kind: DocumentNode}
}

func NewElementNode(e *Element) *Node {
	return &Node{kind: ElementNode, element: e}
}

func NewTextNode(text string) *Node {
	return &Node{kind: TextNode, text: text}
}

func (n *Node) Kind() NodeKind          { return n.kind }
func (n *Node) Parent() *Node           { return n.parent }
func (n *Node) FirstChild() *Node       { return n.firstChild }
func (n *Node) LastChild() *Node        { return n.lastChild }
func (n *Node) PreviousSibling() *Node  { return n.previousSibling }
func (n *Node) NextSibling() *Node      { return n.nextSibling }

// Element returns the element data, or nil for non-element nodes.
func (n *Node) Element() *Element {
	return n.element
}

// ElementKind reports the element kind; ok is false for non-element nodes.
func (n *Node) ElementKind() (ElementKind, bool) {
	if n.element == nil {
		return 0, false
	}
	return n.element.Kind, true
}

func (n *Node) Text() string { return n.text }

// AppendText extends a text node with more character data.
func (n *Node) AppendText(s string) {
	if n.kind != TextNode {
		panic("html: AppendText on a non-text node")
	}
	n.text += s
}

// AppendChild inserts child as the last child of n, updating the sibling,
// parent and last-child links so the tree invariants hold. The last child
// is located by walking the owning chain from the first child.
func (n *Node) AppendChild(child *Node) {
	if n.firstChild == nil {
		n.firstChild = child
	} else {
		last := n.firstChild
		for last.nextSibling != nil {
			last = last.nextSibling
		}
		last.nextSibling = child
		child.previousSibling = last
	}
	n.lastChild = child
	child.parent = n
}

// Window owns the document tree produced by one parse.
type Window struct {
	document *Node
}

func NewWindow() *Window {
	return &Window{document: NewDocumentNode()}
}

func (w *Window) Document() *Node {
	return w.document
}

// FindElementByKind returns the first element of the given kind at or below
// node in document order (children are searched before siblings), or nil.
func FindElementByKind(node *Node, kind ElementKind) *Node {
	if node == nil {
		return nil
	}
	if k, ok := node.ElementKind(); ok && k == kind {
		return node
	}
	if found := FindElementByKind(node.FirstChild(), kind); found != nil {
		return found
	}
	return FindElementByKind(node.NextSibling(), kind)
}

// StyleContent returns the concatenated text content under the first style
// element in the tree, or the empty string when there is none.
func StyleContent(root *Node) string {
	style := FindElementByKind(root, ElementKindStyle)
	if style == nil {
		return ""
	}
	var content string
	for child := style.FirstChild(); child != nil; child = child.NextSibling() {
		if child.Kind() == TextNode {
			content += child.Text()
		}
	}
	return content
}

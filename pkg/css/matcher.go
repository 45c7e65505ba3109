package css

import "wisp/pkg/html"

// Matches reports whether the selector selects the given node. Only element
// nodes can match; unknown selectors match nothing.
func Matches(node *html.Node, sel Selector) bool {
	if node == nil || node.Kind() != html.ElementNode {
		return false
	}
	e := node.Element()
	switch sel.Type {
	case SelectorTypeSelector:
		return e.Kind.String() == sel.Value
	case SelectorClass:
		class, ok := e.Attribute("class")
		return ok && class == sel.Value
	case SelectorID:
		id, ok := e.Attribute("id")
		return ok && id == sel.Value
	}
	return false
}

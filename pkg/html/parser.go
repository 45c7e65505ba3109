package html

type insertionMode int

const (
	modeInitial insertionMode = iota
	modeBeforeHTML
	modeBeforeHead
	modeInHead
	modeAfterHead
	modeInBody
	modeText
	modeAfterBody
	modeAfterAfterBody
)

// Parser builds a document tree from the token stream via an insertion-mode
// state machine. Malformed markup is recovered from by synthesizing the
// missing structural elements or ignoring the offending token; only broken
// internal invariants panic.
type Parser struct {
	window       *Window
	mode         insertionMode
	originalMode insertionMode
	stack        []*Node // stack of open elements, top is the insertion point
	t            *Tokenizer
}

func NewParser(t *Tokenizer) *Parser {
	return &Parser{
		window: NewWindow(),
		mode:   modeInitial,
		t:      t,
	}
}

// Parse tokenizes the input and constructs its document tree.
func Parse(input string) *Window {
	return NewParser(NewTokenizer(input)).ConstructTree()
}

// ConstructTree consumes the whole token stream and returns the Window
// holding the constructed tree. End of input terminates parsing
// immediately, whatever elements are still open.
func (p *Parser) ConstructTree() *Window {
	tok, ok := p.t.Next()
	for ok {
		switch p.mode {
		case modeInitial:
			// Doctype tokens surface as character tokens here; skip them.
			if tok.Type == TokenChar {
				tok, ok = p.t.Next()
				continue
			}
			p.mode = modeBeforeHTML

		case modeBeforeHTML:
			switch tok.Type {
			case TokenChar:
				if tok.Char == ' ' || tok.Char == '\n' {
					tok, ok = p.t.Next()
					continue
				}
			case TokenStartTag:
				if tok.TagName == "html" {
					p.insertElement(tok.TagName, tok.Attributes)
					p.mode = modeBeforeHead
					tok, ok = p.t.Next()
					continue
				}
			case TokenEOF:
				return p.window
			}
			p.insertElement("html", nil)
			p.mode = modeBeforeHead

		case modeBeforeHead:
			switch tok.Type {
			case TokenChar:
				if tok.Char == ' ' || tok.Char == '\n' {
					tok, ok = p.t.Next()
					continue
				}
			case TokenStartTag:
				if tok.TagName == "head" {
					p.insertElement(tok.TagName, tok.Attributes)
					p.mode = modeInHead
					tok, ok = p.t.Next()
					continue
				}
			case TokenEOF:
				return p.window
			}
			p.insertElement("head", nil)
			p.mode = modeInHead

		case modeInHead:
			switch tok.Type {
			case TokenChar:
				if tok.Char == ' ' || tok.Char == '\n' {
					p.insertChar(tok.Char)
					tok, ok = p.t.Next()
					continue
				}
			case TokenStartTag:
				switch tok.TagName {
				case "style", "script":
					p.insertElement(tok.TagName, tok.Attributes)
					p.originalMode = p.mode
					p.mode = modeText
					p.t.StartRawText(tok.TagName)
					tok, ok = p.t.Next()
					continue
				case "body":
					// Head was never closed; close it implicitly.
					p.popUntil(ElementKindHead)
					p.mode = modeAfterHead
					continue
				default:
					if _, err := ElementKindFromString(tok.TagName); err == nil {
						// Any recognized body content ends the head early.
						p.popUntil(ElementKindHead)
						p.mode = modeAfterHead
						continue
					}
				}
			case TokenEndTag:
				if tok.TagName == "head" {
					p.mode = modeAfterHead
					tok, ok = p.t.Next()
					p.popUntil(ElementKindHead)
					continue
				}
			case TokenEOF:
				return p.window
			}
			// Unsupported head content such as meta or title is ignored.
			tok, ok = p.t.Next()

		case modeAfterHead:
			switch tok.Type {
			case TokenChar:
				if tok.Char == ' ' || tok.Char == '\n' {
					p.insertChar(tok.Char)
					tok, ok = p.t.Next()
					continue
				}
			case TokenStartTag:
				if tok.TagName == "body" {
					p.insertElement(tok.TagName, tok.Attributes)
					p.mode = modeInBody
					tok, ok = p.t.Next()
					continue
				}
			case TokenEOF:
				return p.window
			}
			p.insertElement("body", nil)
			p.mode = modeInBody

		case modeInBody:
			switch tok.Type {
			case TokenStartTag:
				switch tok.TagName {
				case "p", "h1", "h2", "a":
					p.insertElement(tok.TagName, tok.Attributes)
				}
				tok, ok = p.t.Next()

			case TokenEndTag:
				switch tok.TagName {
				case "body":
					p.mode = modeAfterBody
					tok, ok = p.t.Next()
					if !p.containsInStack(ElementKindBody) {
						continue
					}
					p.popUntil(ElementKindBody)
				case "html":
					if p.popCurrentNode(ElementKindBody) {
						p.mode = modeAfterBody
						if !p.popCurrentNode(ElementKindHTML) {
							panic("html: html element should be on the stack")
						}
					} else {
						tok, ok = p.t.Next()
					}
				case "p", "h1", "h2", "a":
					kind, err := ElementKindFromString(tok.TagName)
					if err != nil {
						panic("html: " + err.Error())
					}
					tok, ok = p.t.Next()
					if p.containsInStack(kind) {
						p.popUntil(kind)
					}
					// An end tag with no matching open element is ignored.
				default:
					tok, ok = p.t.Next()
				}

			case TokenChar:
				p.insertChar(tok.Char)
				tok, ok = p.t.Next()

			case TokenEOF:
				return p.window
			}

		case modeText:
			switch tok.Type {
			case TokenEOF:
				return p.window
			case TokenEndTag:
				switch tok.TagName {
				case "style":
					p.popUntil(ElementKindStyle)
					p.mode = p.originalMode
					tok, ok = p.t.Next()
					continue
				case "script":
					p.popUntil(ElementKindScript)
					p.mode = p.originalMode
					tok, ok = p.t.Next()
					continue
				}
			case TokenChar:
				p.insertChar(tok.Char)
				tok, ok = p.t.Next()
				continue
			}
			p.mode = p.originalMode

		case modeAfterBody:
			switch tok.Type {
			case TokenChar:
				tok, ok = p.t.Next()
				continue
			case TokenEndTag:
				if tok.TagName == "html" {
					p.mode = modeAfterAfterBody
					tok, ok = p.t.Next()
					continue
				}
			case TokenEOF:
				return p.window
			}
			p.mode = modeInBody

		case modeAfterAfterBody:
			switch tok.Type {
			case TokenChar:
				tok, ok = p.t.Next()
				continue
			case TokenEOF:
				return p.window
			}
			// Anything else is a parse error; try to reinterpret it as
			// body content.
			p.mode = modeInBody
		}
	}
	return p.window
}

// insertElement appends a new element under the current insertion point and
// pushes it onto the stack of open elements. The caller guarantees the tag
// is one of the supported kinds.
func (p *Parser) insertElement(tag string, attributes []Attribute) {
	kind, err := ElementKindFromString(tag)
	if err != nil {
		panic("html: " + err.Error())
	}

	current := p.window.Document()
	if len(p.stack) > 0 {
		current = p.stack[len(p.stack)-1]
	}

	node := NewElementNode(NewElement(kind, attributes))
	current.AppendChild(node)
	p.stack = append(p.stack, node)
}

// insertChar adds character data under the current insertion point. A
// trailing text node is extended in place so consecutive characters merge
// into one node; whitespace never starts a new text node.
func (p *Parser) insertChar(c rune) {
	if len(p.stack) == 0 {
		// Text directly under the document root is dropped.
		return
	}
	current := p.stack[len(p.stack)-1]

	if last := current.LastChild(); last != nil && last.Kind() == TextNode {
		last.AppendText(string(c))
		return
	}
	if c == '\n' || c == ' ' {
		return
	}
	current.AppendChild(NewTextNode(string(c)))
}

// popCurrentNode pops the top of the open-elements stack if it is an
// element of the given kind.
func (p *Parser) popCurrentNode(kind ElementKind) bool {
	if len(p.stack) == 0 {
		return false
	}
	if k, ok := p.stack[len(p.stack)-1].ElementKind(); ok && k == kind {
		p.stack = p.stack[:len(p.stack)-1]
		return true
	}
	return false
}

// popUntil pops open elements until an element of the given kind has been
// popped. The element must be on the stack; callers check with
// containsInStack first when the token may legitimately be unmatched.
func (p *Parser) popUntil(kind ElementKind) {
	if !p.containsInStack(kind) {
		panic("html: stack of open elements has no " + kind.String() + " element")
	}
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		if k, ok := top.ElementKind(); ok && k == kind {
			return
		}
	}
}

func (p *Parser) containsInStack(kind ElementKind) bool {
	for _, n := range p.stack {
		if k, ok := n.ElementKind(); ok && k == kind {
			return true
		}
	}
	return false
}

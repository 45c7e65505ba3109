package css

import "strings"

type SelectorType int

const (
	SelectorUnknown SelectorType = iota
	SelectorTypeSelector
	SelectorClass
	SelectorID
)

// Selector is a simple selector: an element type name, a class name, an id,
// or unknown. Unknown selectors never match anything; they exist so that a
// rule with an unparsable selector can still be consumed and dropped
// without derailing the rest of the sheet.
type Selector struct {
	Type  SelectorType
	Value string
}

// Declaration is one property/value pair. The value is kept as the raw
// style token; the layout tree builder interprets it per property.
type Declaration struct {
	Property string
	Value    Token
}

// QualifiedRule is a selector plus its declaration block.
type QualifiedRule struct {
	Selector     Selector
	Declarations []Declaration
}

// StyleSheet is an ordered rule list. Order is meaningful: when several
// rules set the same property on a node, the later rule wins.
type StyleSheet struct {
	Rules []QualifiedRule
}

// Parser consumes the style token stream into a StyleSheet. Parse anomalies
// (missing colons, unknown at-rules, unrecognizable selectors) drop the
// offending declaration or rule and keep going; no error is ever surfaced.
type Parser struct {
	t      *Tokenizer
	peeked *Token
}

func NewParser(t *Tokenizer) *Parser {
	return &Parser{t: t}
}

// ParseString tokenizes and parses stylesheet text in one step.
func ParseString(input string) *StyleSheet {
	return NewParser(NewTokenizer(input)).ParseStyleSheet()
}

func (p *Parser) ParseStyleSheet() *StyleSheet {
	return &StyleSheet{Rules: p.consumeListOfRules()}
}

func (p *Parser) peek() (Token, bool) {
	if p.peeked == nil {
		tok, ok := p.t.Next()
		if !ok {
			return Token{}, false
		}
		p.peeked = &tok
	}
	return *p.peeked, true
}

func (p *Parser) next() (Token, bool) {
	if p.peeked != nil {
		tok := *p.peeked
		p.peeked = nil
		return tok, true
	}
	return p.t.Next()
}

func (p *Parser) consumeListOfRules() []QualifiedRule {
	var rules []QualifiedRule
	for {
		tok, ok := p.peek()
		if !ok {
			return rules
		}
		if tok.Type == TokenAtKeyword {
			// At-rules are recognized but not retained: parse the rule
			// that follows and throw it away.
			p.next()
			p.consumeQualifiedRule()
			continue
		}
		rule, ok := p.consumeQualifiedRule()
		if !ok {
			return rules
		}
		rules = append(rules, rule)
	}
}

func (p *Parser) consumeQualifiedRule() (QualifiedRule, bool) {
	rule := QualifiedRule{Selector: Selector{Type: SelectorUnknown}}
	for {
		tok, ok := p.peek()
		if !ok {
			// End of input mid-rule: no rule is produced.
			return QualifiedRule{}, false
		}
		if tok.Type == TokenOpenBrace {
			p.next()
			rule.Declarations = p.consumeListOfDeclarations()
			return rule, true
		}
		rule.Selector = p.consumeSelector()
	}
}

func (p *Parser) consumeSelector() Selector {
	tok, ok := p.next()
	if !ok {
		return Selector{Type: SelectorUnknown}
	}
	switch tok.Type {
	case TokenHash:
		return Selector{Type: SelectorID, Value: strings.TrimPrefix(tok.Value, "#")}

	case TokenDelim:
		if tok.Delim == '.' {
			if name, ok := p.next(); ok && name.Type == TokenIdent {
				return Selector{Type: SelectorClass, Value: name.Value}
			}
		}
		return Selector{Type: SelectorUnknown}

	case TokenIdent:
		// A pseudo-class suffix (p:hover) is unsupported; skip it and
		// keep the type selector on the base identifier.
		if next, ok := p.peek(); ok && next.Type == TokenColon {
			p.skipToOpenBrace()
		}
		return Selector{Type: SelectorTypeSelector, Value: tok.Value}

	case TokenAtKeyword:
		p.skipToOpenBrace()
		return Selector{Type: SelectorUnknown}

	default:
		return Selector{Type: SelectorUnknown}
	}
}

// skipToOpenBrace discards tokens up to, but not including, the next open
// brace (or end of input).
func (p *Parser) skipToOpenBrace() {
	for {
		tok, ok := p.peek()
		if !ok || tok.Type == TokenOpenBrace {
			return
		}
		p.next()
	}
}

func (p *Parser) consumeListOfDeclarations() []Declaration {
	var declarations []Declaration
	for {
		tok, ok := p.peek()
		if !ok {
			return declarations
		}
		switch tok.Type {
		case TokenCloseBrace:
			p.next()
			return declarations
		case TokenSemicolon:
			p.next()
		case TokenIdent:
			if decl, ok := p.consumeDeclaration(); ok {
				declarations = append(declarations, decl)
			}
		default:
			// Stray token inside the block; drop it.
			p.next()
		}
	}
}

// consumeDeclaration parses `property : value`. A declaration without the
// colon is discarded and parsing resumes at the next token.
func (p *Parser) consumeDeclaration() (Declaration, bool) {
	property, ok := p.next()
	if !ok {
		return Declaration{}, false
	}
	decl := Declaration{Property: property.Value}

	if colon, ok := p.peek(); !ok || colon.Type != TokenColon {
		return Declaration{}, false
	}
	p.next()

	value, ok := p.next()
	if !ok {
		return Declaration{}, false
	}
	decl.Value = value
	return decl, true
}

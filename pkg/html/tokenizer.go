package html

import (
	"strings"
	"unicode"
)

type state int

const (
	stateData state = iota
	stateTagOpen
	stateEndTagOpen
	stateTagName
	stateBeforeAttributeName
	stateAttributeName
	stateAfterAttributeName
	stateBeforeAttributeValue
	stateAttributeValueDoubleQuoted
	stateAttributeValueSingleQuoted
	stateAttributeValueUnquoted
	stateAfterAttributeValueQuoted
	stateSelfClosingStartTag
	stateScriptData
	stateScriptDataLessThanSign
	stateScriptDataEndTagOpen
	stateScriptDataEndTagName
)

// Tokenizer turns markup text into a finite sequence of tokens. It consumes
// the input one character at a time via a state machine with a single
// character of reconsume lookback. The sequence is not restartable: once
// Next reports false it keeps reporting false.
type Tokenizer struct {
	input      []rune
	pos        int
	state      state
	reconsume  bool
	latest     *Token
	buf        []rune // temporary buffer for a tentative raw-text end tag
	rawTextTag string // expected end tag while in the ScriptData states
	pending    []Token
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: []rune(input), state: stateData}
}

// StartRawText switches the tokenizer into raw-text handling until the end
// tag with the given name is seen. The tree constructor calls this after
// inserting a script or style element.
func (t *Tokenizer) StartRawText(tag string) {
	t.rawTextTag = strings.ToLower(tag)
	t.state = stateScriptData
}

// Next returns the next token. It reports false once the input is
// exhausted; end of input that interrupts a partially scanned construct
// yields a single TokenEOF first.
func (t *Tokenizer) Next() (Token, bool) {
	if len(t.pending) > 0 {
		tok := t.pending[0]
		t.pending = t.pending[1:]
		return tok, true
	}
	if t.pos >= len(t.input) && !t.reconsume {
		return Token{}, false
	}

	for {
		if t.pos >= len(t.input) && !t.reconsume {
			// End of input reached while a construct is still open.
			return Token{Type: TokenEOF}, true
		}
		var c rune
		if t.reconsume {
			t.reconsume = false
			c = t.input[t.pos-1]
		} else {
			c = t.input[t.pos]
			t.pos++
		}

		switch t.state {
		case stateData:
			if c == '<' {
				t.state = stateTagOpen
				continue
			}
			return Token{Type: TokenChar, Char: c}, true

		case stateTagOpen:
			if c == '/' {
				t.state = stateEndTagOpen
				continue
			}
			if isASCIIAlpha(c) {
				t.reconsume = true
				t.state = stateTagName
				t.createTag(true)
				continue
			}
			// Not a tag after all; reinterpret the character as data.
			t.reconsume = true
			t.state = stateData

		case stateEndTagOpen:
			if isASCIIAlpha(c) {
				t.reconsume = true
				t.state = stateTagName
				t.createTag(false)
			}

		case stateTagName:
			if c == ' ' || c == '\n' {
				t.state = stateBeforeAttributeName
				continue
			}
			if c == '/' {
				t.state = stateSelfClosingStartTag
				continue
			}
			if c == '>' {
				t.state = stateData
				return t.takeLatestToken(), true
			}
			t.appendTagName(unicode.ToLower(c))

		case stateBeforeAttributeName:
			if c == ' ' || c == '\n' {
				continue
			}
			if c == '/' || c == '>' {
				t.reconsume = true
				t.state = stateAfterAttributeName
				continue
			}
			t.reconsume = true
			t.state = stateAttributeName
			t.startNewAttribute()

		case stateAttributeName:
			if c == ' ' || c == '\n' || c == '/' || c == '>' {
				t.reconsume = true
				t.state = stateAfterAttributeName
				continue
			}
			if c == '=' {
				t.state = stateBeforeAttributeValue
				continue
			}
			t.appendAttribute(unicode.ToLower(c), true)

		case stateAfterAttributeName:
			if c == ' ' || c == '\n' {
				continue
			}
			if c == '/' {
				t.state = stateSelfClosingStartTag
				continue
			}
			if c == '=' {
				t.state = stateBeforeAttributeValue
				continue
			}
			if c == '>' {
				t.state = stateData
				return t.takeLatestToken(), true
			}
			t.reconsume = true
			t.state = stateAttributeName
			t.startNewAttribute()

		case stateBeforeAttributeValue:
			if c == ' ' || c == '\n' {
				continue
			}
			if c == '"' {
				t.state = stateAttributeValueDoubleQuoted
				continue
			}
			if c == '\'' {
				t.state = stateAttributeValueSingleQuoted
				continue
			}
			t.reconsume = true
			t.state = stateAttributeValueUnquoted

		case stateAttributeValueDoubleQuoted:
			if c == '"' {
				t.state = stateAfterAttributeValueQuoted
				continue
			}
			t.appendAttribute(c, false)

		case stateAttributeValueSingleQuoted:
			if c == '\'' {
				t.state = stateAfterAttributeValueQuoted
				continue
			}
			t.appendAttribute(c, false)

		case stateAttributeValueUnquoted:
			if c == ' ' || c == '\n' {
				t.state = stateBeforeAttributeName
				continue
			}
			if c == '>' {
				t.state = stateData
				return t.takeLatestToken(), true
			}
			t.appendAttribute(c, false)

		case stateAfterAttributeValueQuoted:
			if c == ' ' || c == '\n' {
				t.state = stateBeforeAttributeName
				continue
			}
			if c == '/' {
				t.state = stateSelfClosingStartTag
				continue
			}
			if c == '>' {
				t.state = stateData
				return t.takeLatestToken(), true
			}
			t.reconsume = true
			t.state = stateBeforeAttributeName

		case stateSelfClosingStartTag:
			if c == '>' {
				t.setSelfClosingFlag()
				t.state = stateData
				return t.takeLatestToken(), true
			}

		case stateScriptData:
			if c == '<' {
				t.state = stateScriptDataLessThanSign
				t.buf = append(t.buf[:0], '<')
				continue
			}
			return Token{Type: TokenChar, Char: c}, true

		case stateScriptDataLessThanSign:
			if c == '/' {
				t.buf = append(t.buf, '/')
				t.state = stateScriptDataEndTagOpen
				continue
			}
			t.reconsume = true
			t.state = stateScriptData
			return t.flushTemporaryBuffer(), true

		case stateScriptDataEndTagOpen:
			if isASCIIAlpha(c) {
				t.reconsume = true
				t.state = stateScriptDataEndTagName
				t.createTag(false)
				continue
			}
			t.reconsume = true
			t.state = stateScriptData
			return t.flushTemporaryBuffer(), true

		case stateScriptDataEndTagName:
			if c == '>' {
				if t.latest != nil && t.latest.TagName == t.rawTextTag {
					t.rawTextTag = ""
					t.buf = nil
					t.state = stateData
					return t.takeLatestToken(), true
				}
				// Wrong end tag: replay the buffered characters literally.
				t.latest = nil
				t.buf = append(t.buf, '>')
				t.state = stateScriptData
				return t.flushTemporaryBuffer(), true
			}
			if isASCIIAlpha(c) {
				t.buf = append(t.buf, c)
				t.appendTagName(unicode.ToLower(c))
				continue
			}
			t.latest = nil
			t.reconsume = true
			t.state = stateScriptData
			return t.flushTemporaryBuffer(), true
		}
	}
}

// createTag starts a new start- or end-tag token that subsequent characters
// will be appended to.
func (t *Tokenizer) createTag(startTag bool) {
	if startTag {
		t.latest = &Token{Type: TokenStartTag}
	} else {
		t.latest = &Token{Type: TokenEndTag}
	}
}

func (t *Tokenizer) appendTagName(c rune) {
	if t.latest == nil {
		panic("html: no tag token in progress")
	}
	t.latest.TagName += string(c)
}

// startNewAttribute, appendAttribute and setSelfClosingFlag drop their
// input on an end tag: attribute-like text and a self-closing slash inside
// an end tag are parse anomalies, and the tag is emitted without them.
func (t *Tokenizer) startNewAttribute() {
	if t.latest == nil {
		panic("html: no tag token in progress")
	}
	if t.latest.Type != TokenStartTag {
		return
	}
	t.latest.Attributes = append(t.latest.Attributes, Attribute{})
}

func (t *Tokenizer) appendAttribute(c rune, isName bool) {
	if t.latest == nil {
		panic("html: no tag token in progress")
	}
	if t.latest.Type != TokenStartTag {
		return
	}
	if len(t.latest.Attributes) == 0 {
		panic("html: no attribute in progress")
	}
	t.latest.Attributes[len(t.latest.Attributes)-1].addChar(c, isName)
}

func (t *Tokenizer) setSelfClosingFlag() {
	if t.latest == nil {
		panic("html: no tag token in progress")
	}
	if t.latest.Type != TokenStartTag {
		return
	}
	t.latest.SelfClosing = true
}

func (t *Tokenizer) takeLatestToken() Token {
	if t.latest == nil {
		panic("html: no token to emit")
	}
	tok := *t.latest
	t.latest = nil
	return tok
}

// flushTemporaryBuffer re-emits a tentative "</name" sequence that turned
// out not to close the current raw-text element. The first buffered
// character is returned and the rest are queued.
func (t *Tokenizer) flushTemporaryBuffer() Token {
	tok := Token{Type: TokenChar, Char: t.buf[0]}
	for _, c := range t.buf[1:] {
		t.pending = append(t.pending, Token{Type: TokenChar, Char: c})
	}
	t.buf = nil
	return tok
}

func isASCIIAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

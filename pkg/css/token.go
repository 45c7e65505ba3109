package css

import "strings"

type TokenType int

const (
	TokenHash TokenType = iota // #rrggbb or #id
	TokenDelim
	TokenNumber
	TokenColon
	TokenSemicolon
	TokenOpenParen
	TokenCloseParen
	TokenOpenBrace
	TokenCloseBrace
	TokenIdent
	TokenString
	TokenAtKeyword
)

type Token struct {
	Type   TokenType
	Value  string  // ident, string, at-keyword, or hash text (with marker)
	Delim  rune    // set for TokenDelim
	Number float64 // set for TokenNumber
}

// Tokenizer is a single-pass scanner over stylesheet text. Whitespace is
// skipped and never emitted; characters outside the recognized set come
// back as delimiter tokens rather than aborting the scan.
type Tokenizer struct {
	input []rune
	pos   int
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: []rune(input)}
}

// Next returns the next style token, reporting false at end of input.
func (t *Tokenizer) Next() (Token, bool) {
	for t.pos < len(t.input) {
		c := t.input[t.pos]
		switch {
		case c == ' ' || c == '\n' || c == '\t':
			t.pos++

		case c == '(':
			t.pos++
			return Token{Type: TokenOpenParen}, true
		case c == ')':
			t.pos++
			return Token{Type: TokenCloseParen}, true
		case c == '{':
			t.pos++
			return Token{Type: TokenOpenBrace}, true
		case c == '}':
			t.pos++
			return Token{Type: TokenCloseBrace}, true
		case c == ':':
			t.pos++
			return Token{Type: TokenColon}, true
		case c == ';':
			t.pos++
			return Token{Type: TokenSemicolon}, true

		case c == '"' || c == '\'':
			t.pos++
			return Token{Type: TokenString, Value: t.consumeString(c)}, true

		case c >= '0' && c <= '9':
			return Token{Type: TokenNumber, Number: t.consumeNumber()}, true

		case c == '#':
			// Always scanned as one name including the marker; the rule
			// parser or the color resolver decides what it means.
			return Token{Type: TokenHash, Value: t.consumeName()}, true

		case c == '-':
			// Negative numbers are unsupported, so a hyphen starts an
			// identifier (e.g. background-color written as a value).
			return Token{Type: TokenIdent, Value: t.consumeName()}, true

		case c == '@':
			if t.pos+3 < len(t.input) &&
				isASCIIAlpha(t.input[t.pos+1]) &&
				isNameChar(t.input[t.pos+2]) &&
				isNameChar(t.input[t.pos+3]) {
				t.pos++ // skip '@'
				return Token{Type: TokenAtKeyword, Value: t.consumeName()}, true
			}
			t.pos++
			return Token{Type: TokenDelim, Delim: '@'}, true

		case isASCIIAlpha(c) || c == '_':
			return Token{Type: TokenIdent, Value: t.consumeName()}, true

		default:
			t.pos++
			return Token{Type: TokenDelim, Delim: c}, true
		}
	}
	return Token{}, false
}

// consumeString scans until the matching quote; an unterminated string runs
// to end of input.
func (t *Tokenizer) consumeString(quote rune) string {
	var sb strings.Builder
	for t.pos < len(t.input) {
		c := t.input[t.pos]
		t.pos++
		if c == quote {
			break
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// consumeNumber accumulates digits, switching to fractional accumulation by
// repeated division by ten after a decimal point.
func (t *Tokenizer) consumeNumber() float64 {
	var num float64
	floating := false
	floatingDigit := 1.0

	for t.pos < len(t.input) {
		c := t.input[t.pos]
		switch {
		case c >= '0' && c <= '9':
			if floating {
				floatingDigit *= 1.0 / 10.0
				num += float64(c-'0') * floatingDigit
			} else {
				num = num*10.0 + float64(c-'0')
			}
			t.pos++
		case c == '.':
			floating = true
			t.pos++
		default:
			return num
		}
	}
	return num
}

// consumeName scans an identifier-like run. The character at the current
// position is always part of the name (this is how the '#' marker ends up
// inside hash tokens).
func (t *Tokenizer) consumeName() string {
	start := t.pos
	t.pos++
	for t.pos < len(t.input) && isNameChar(t.input[t.pos]) {
		t.pos++
	}
	return string(t.input[start:t.pos])
}

func isNameChar(c rune) bool {
	return isASCIIAlpha(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isASCIIAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

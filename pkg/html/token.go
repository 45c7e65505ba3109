package html

type TokenType int

const (
	TokenStartTag TokenType = iota
	TokenEndTag
	TokenChar
	TokenEOF
)

// Attribute is a name/value pair on a start tag. It is built up one
// character at a time while the tokenizer is inside the attribute states
// and is not touched again once the owning token has been emitted.
type Attribute struct {
	Name  string
	Value string
}

func (a *Attribute) addChar(c rune, isName bool) {
	if isName {
		a.Name += string(c)
	} else {
		a.Value += string(c)
	}
}

type Token struct {
	Type        TokenType
	TagName     string
	Attributes  []Attribute
	SelfClosing bool // true for <img /> style tags
	Char        rune // set for TokenChar
}

// Attribute returns the value of the named attribute on a start tag token.
func (t Token) Attribute(name string) (string, bool) {
	for _, a := range t.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

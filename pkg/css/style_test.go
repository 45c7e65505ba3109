package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wisp/pkg/html"
)

func TestColorFromName(t *testing.T) {
	c, err := ColorFromName("red")
	require.NoError(t, err)
	assert.Equal(t, Color{Name: "red", Code: "#ff0000"}, c)

	_, err = ColorFromName("chartreuse")
	assert.Error(t, err)
}

func TestColorFromCode(t *testing.T) {
	c, err := ColorFromCode("#008000")
	require.NoError(t, err)
	assert.Equal(t, "green", c.Name)

	c, err = ColorFromCode("#123456")
	require.NoError(t, err)
	assert.Equal(t, "", c.Name)
	assert.Equal(t, "#123456", c.Code)

	for _, bad := range []string{"ff0000", "#ff00", "#zzzzzz", ""} {
		_, err := ColorFromCode(bad)
		assert.Error(t, err, "code %q", bad)
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b := Color{Code: "#ff8000"}.RGB()
	assert.Equal(t, uint8(0xff), r)
	assert.Equal(t, uint8(0x80), g)
	assert.Equal(t, uint8(0x00), b)
}

func TestDisplayTypeFromString(t *testing.T) {
	for s, want := range map[string]DisplayType{
		"block":  DisplayBlock,
		"inline": DisplayInline,
		"none":   DisplayNone,
	} {
		got, err := DisplayTypeFromString(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := DisplayTypeFromString("flex")
	assert.Error(t, err)
}

func TestComputedStylePanicsWhenUnresolved(t *testing.T) {
	s := NewComputedStyle()
	assert.Panics(t, func() { s.Display() })
	assert.Panics(t, func() { s.Color() })
	assert.Panics(t, func() { s.BackgroundColor() })
	assert.Panics(t, func() { s.FontSize() })
}

func TestCascadeLastRuleWins(t *testing.T) {
	s := NewComputedStyle()
	s.Cascade([]Declaration{
		{Property: "color", Value: Token{Type: TokenIdent, Value: "red"}},
	})
	s.Cascade([]Declaration{
		{Property: "color", Value: Token{Type: TokenIdent, Value: "blue"}},
	})
	assert.Equal(t, "blue", s.Color().Name)
}

func TestCascadeInvalidValuesFallBack(t *testing.T) {
	s := NewComputedStyle()
	s.Cascade([]Declaration{
		{Property: "background-color", Value: Token{Type: TokenIdent, Value: "nosuch"}},
		{Property: "color", Value: Token{Type: TokenHash, Value: "#xyz"}},
		{Property: "display", Value: Token{Type: TokenIdent, Value: "grid"}},
	})
	assert.Equal(t, ColorWhite(), s.BackgroundColor())
	assert.Equal(t, ColorBlack(), s.Color())
	assert.Equal(t, DisplayNone, s.Display())
}

func TestCascadeIgnoresUnsupportedProperties(t *testing.T) {
	s := NewComputedStyle()
	s.Cascade([]Declaration{
		{Property: "margin", Value: Token{Type: TokenNumber, Number: 4}},
	})
	assert.Panics(t, func() { s.Display() }, "unsupported property must leave the style unset")
}

func elementNode(kind html.ElementKind) *html.Node {
	return html.NewElementNode(html.NewElement(kind, nil))
}

func TestDefaultingBuiltIns(t *testing.T) {
	tests := []struct {
		name     string
		node     *html.Node
		display  DisplayType
		fontSize FontSize
	}{
		{"p", elementNode(html.ElementKindP), DisplayBlock, FontSizeMedium},
		{"a", elementNode(html.ElementKindA), DisplayInline, FontSizeMedium},
		{"h1", elementNode(html.ElementKindH1), DisplayBlock, FontSizeXXLarge},
		{"h2", elementNode(html.ElementKindH2), DisplayBlock, FontSizeXLarge},
		{"text", html.NewTextNode("x"), DisplayInline, FontSizeMedium},
	}
	for _, tt := range tests {
		s := NewComputedStyle()
		s.Defaulting(tt.node, nil)
		assert.Equal(t, tt.display, s.Display(), "%s display", tt.name)
		assert.Equal(t, tt.fontSize, s.FontSize(), "%s font size", tt.name)
		assert.Equal(t, ColorWhite(), s.BackgroundColor(), "%s background", tt.name)
		assert.Equal(t, ColorBlack(), s.Color(), "%s color", tt.name)
	}
}

func TestDefaultingInheritsNonDefaultParentValues(t *testing.T) {
	parent := NewComputedStyle()
	red, _ := ColorFromName("red")
	parent.SetColor(red)
	parent.SetBackgroundColor(ColorWhite())
	parent.SetDisplay(DisplayBlock)
	parent.SetFontSize(FontSizeXLarge)

	s := NewComputedStyle()
	s.Defaulting(html.NewTextNode("x"), parent)

	assert.Equal(t, red, s.Color(), "non-default color inherits")
	assert.Equal(t, ColorWhite(), s.BackgroundColor(), "default background does not inherit")
	assert.Equal(t, FontSizeXLarge, s.FontSize(), "non-default font size inherits")
	assert.Equal(t, DisplayInline, s.Display(), "display never inherits")
}

func TestDefaultingKeepsCascadedValues(t *testing.T) {
	parent := NewComputedStyle()
	parent.Defaulting(elementNode(html.ElementKindBody), nil)

	blue, _ := ColorFromName("blue")
	s := NewComputedStyle()
	s.SetColor(blue)
	s.Defaulting(elementNode(html.ElementKindP), parent)
	assert.Equal(t, blue, s.Color())
}

package css

import (
	"fmt"
	"strconv"
	"strings"

	"wisp/pkg/html"
)

// Color is a named color and/or a #rrggbb code. Colors from the supported
// palette carry both; a bare code that is not in the palette has no name.
type Color struct {
	Name string
	Code string
}

var namedColors = map[string]string{
	"white":     "#ffffff",
	"lightgray": "#d3d3d3",
	"silver":    "#c0c0c0",
	"gray":      "#808080",
	"darkgray":  "#a9a9a9",
	"black":     "#000000",
	"red":       "#ff0000",
	"green":     "#008000",
	"blue":      "#0000ff",
}

func ColorWhite() Color { return Color{Name: "white", Code: "#ffffff"} }
func ColorBlack() Color { return Color{Name: "black", Code: "#000000"} }

// ColorFromName resolves a color keyword from the supported palette.
func ColorFromName(name string) (Color, error) {
	code, ok := namedColors[strings.ToLower(name)]
	if !ok {
		return Color{}, fmt.Errorf("color name %q is not supported", name)
	}
	return Color{Name: strings.ToLower(name), Code: code}, nil
}

// ColorFromCode resolves a #rrggbb code, mapping known codes back to their
// palette name.
func ColorFromCode(code string) (Color, error) {
	if len(code) != 7 || code[0] != '#' {
		return Color{}, fmt.Errorf("invalid color code %q", code)
	}
	if _, err := strconv.ParseUint(code[1:], 16, 32); err != nil {
		return Color{}, fmt.Errorf("invalid color code %q", code)
	}
	c := Color{Code: strings.ToLower(code)}
	for name, known := range namedColors {
		if known == c.Code {
			c.Name = name
			break
		}
	}
	return c, nil
}

// RGB returns the 8-bit channels of the color code.
func (c Color) RGB() (r, g, b uint8) {
	v, err := strconv.ParseUint(strings.TrimPrefix(c.Code, "#"), 16, 32)
	if err != nil {
		panic("css: color carries an invalid code: " + c.Code)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

type DisplayType int

const (
	DisplayBlock DisplayType = iota
	DisplayInline
	DisplayNone
)

func DisplayTypeFromString(s string) (DisplayType, error) {
	switch s {
	case "block":
		return DisplayBlock, nil
	case "inline":
		return DisplayInline, nil
	case "none":
		return DisplayNone, nil
	}
	return DisplayBlock, fmt.Errorf("display value %q is not supported", s)
}

// defaultDisplay is the display a node gets when no rule sets one: anchors
// and text are inline, everything else is block.
func defaultDisplay(node *html.Node) DisplayType {
	switch node.Kind() {
	case html.TextNode:
		return DisplayInline
	case html.ElementNode:
		if kind, _ := node.ElementKind(); kind == html.ElementKindA {
			return DisplayInline
		}
	}
	return DisplayBlock
}

type FontSize int

const (
	FontSizeMedium FontSize = iota
	FontSizeXLarge
	FontSizeXXLarge
)

// defaultFontSize gives headings their enlarged built-in size.
func defaultFontSize(node *html.Node) FontSize {
	if kind, ok := node.ElementKind(); ok {
		switch kind {
		case html.ElementKindH1:
			return FontSizeXXLarge
		case html.ElementKindH2:
			return FontSizeXLarge
		}
	}
	return FontSizeMedium
}

// ComputedStyle holds the resolved properties of one layout node. Each
// property starts unset; Cascade fills in what the matching rules declare
// and Defaulting resolves the rest by inheritance or built-in defaults.
// Reading a property before it has been resolved is an invariant violation.
type ComputedStyle struct {
	backgroundColor *Color
	color           *Color
	display         *DisplayType
	fontSize        *FontSize
}

func NewComputedStyle() *ComputedStyle {
	return &ComputedStyle{}
}

func (s *ComputedStyle) SetBackgroundColor(c Color) { s.backgroundColor = &c }
func (s *ComputedStyle) SetColor(c Color)           { s.color = &c }
func (s *ComputedStyle) SetDisplay(d DisplayType)   { s.display = &d }
func (s *ComputedStyle) SetFontSize(f FontSize)     { s.fontSize = &f }

func (s *ComputedStyle) BackgroundColor() Color {
	if s.backgroundColor == nil {
		panic("css: background-color is not resolved")
	}
	return *s.backgroundColor
}

func (s *ComputedStyle) Color() Color {
	if s.color == nil {
		panic("css: color is not resolved")
	}
	return *s.color
}

func (s *ComputedStyle) Display() DisplayType {
	if s.display == nil {
		panic("css: display is not resolved")
	}
	return *s.display
}

func (s *ComputedStyle) FontSize() FontSize {
	if s.fontSize == nil {
		panic("css: font-size is not resolved")
	}
	return *s.fontSize
}

// Cascade applies one rule's declarations for the supported properties.
// Rules are applied in stylesheet order, so a later call overrides an
// earlier one for the same property. Invalid color values fall back to the
// property default (white background, black text); an invalid display value
// resolves to none.
func (s *ComputedStyle) Cascade(declarations []Declaration) {
	for _, decl := range declarations {
		switch decl.Property {
		case "background-color":
			if c, ok := resolveColor(decl.Value, ColorWhite()); ok {
				s.SetBackgroundColor(c)
			}
		case "color":
			if c, ok := resolveColor(decl.Value, ColorBlack()); ok {
				s.SetColor(c)
			}
		case "display":
			if decl.Value.Type == TokenIdent {
				d, err := DisplayTypeFromString(decl.Value.Value)
				if err != nil {
					d = DisplayNone
				}
				s.SetDisplay(d)
			}
		}
	}
}

// resolveColor interprets a declaration value as a color keyword or a hash
// code. Token types that cannot be a color report false; a malformed value
// of the right token type falls back to the given default.
func resolveColor(value Token, fallback Color) (Color, bool) {
	switch value.Type {
	case TokenIdent:
		c, err := ColorFromName(value.Value)
		if err != nil {
			return fallback, true
		}
		return c, true
	case TokenHash:
		c, err := ColorFromCode(value.Value)
		if err != nil {
			return fallback, true
		}
		return c, true
	}
	return Color{}, false
}

// Defaulting fills in every property that cascading left unset. Background
// color, text color and font size are inherited from the parent where the
// parent differs from the built-in default; the rest take built-in
// defaults, with display and font size derived from the node itself.
func (s *ComputedStyle) Defaulting(node *html.Node, parent *ComputedStyle) {
	if parent != nil {
		if s.backgroundColor == nil && parent.BackgroundColor() != ColorWhite() {
			s.SetBackgroundColor(parent.BackgroundColor())
		}
		if s.color == nil && parent.Color() != ColorBlack() {
			s.SetColor(parent.Color())
		}
		if s.fontSize == nil && parent.FontSize() != FontSizeMedium {
			s.SetFontSize(parent.FontSize())
		}
	}

	if s.backgroundColor == nil {
		s.SetBackgroundColor(ColorWhite())
	}
	if s.color == nil {
		s.SetColor(ColorBlack())
	}
	if s.display == nil {
		s.SetDisplay(defaultDisplay(node))
	}
	if s.fontSize == nil {
		s.SetFontSize(defaultFontSize(node))
	}
}

// Package render paints a layout tree into an image.
package render

import (
	"image"
	"strings"

	"github.com/fogleman/gg"

	"wisp/pkg/css"
	"wisp/pkg/layout"
)

// Renderer paints layout objects onto a fixed-size window surface. Layout
// coordinates are relative to the content area; painting shifts them by the
// window padding.
type Renderer struct {
	ctx *gg.Context
}

func New() *Renderer {
	ctx := gg.NewContext(layout.WindowWidth, layout.WindowHeight)
	ctx.SetHexColor("#ffffff")
	ctx.Clear()
	return &Renderer{ctx: ctx}
}

// Paint draws the whole view: block backgrounds first at each node, then
// text on top, children over parents.
func (r *Renderer) Paint(v *layout.LayoutView) {
	r.paintObject(v.Root())
}

func (r *Renderer) paintObject(o *layout.LayoutObject) {
	if o == nil {
		return
	}

	switch o.Kind() {
	case layout.LayoutObjectBlock:
		bg := o.Style().BackgroundColor()
		r.ctx.SetHexColor(bg.Code)
		r.ctx.DrawRectangle(
			float64(o.Point().X+layout.WindowPadding),
			float64(o.Point().Y+layout.WindowPadding),
			float64(o.Size().Width),
			float64(o.Size().Height),
		)
		r.ctx.Fill()
	case layout.LayoutObjectText:
		r.paintText(o)
	}

	r.paintObject(o.FirstChild())
	r.paintObject(o.NextSibling())
}

func (r *Renderer) paintText(o *layout.LayoutObject) {
	text := strings.Join(strings.Fields(o.Node().Text()), " ")
	if text == "" {
		return
	}

	ratio := 1
	switch o.Style().FontSize() {
	case css.FontSizeXXLarge:
		ratio = 3
	case css.FontSizeXLarge:
		ratio = 2
	}

	r.ctx.SetHexColor(o.Style().Color().Code)

	lineChars := layout.ContentAreaWidth / (layout.CharWidth * ratio)
	lineHeight := layout.CharHeightWithPadding * ratio
	x := float64(o.Point().X + layout.WindowPadding)
	y := o.Point().Y + layout.WindowPadding

	runes := []rune(text)
	for i := 0; len(runes) > 0; i++ {
		n := lineChars
		if n > len(runes) {
			n = len(runes)
		}
		line := string(runes[:n])
		runes = runes[n:]
		// DrawString takes the baseline, not the line top.
		r.ctx.DrawString(line, x, float64(y+i*lineHeight+layout.CharHeight))
	}
}

// SavePNG writes the painted surface to a file.
func (r *Renderer) SavePNG(path string) error {
	return r.ctx.SavePNG(path)
}

// Image returns the painted surface.
func (r *Renderer) Image() image.Image {
	return r.ctx.Image()
}

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wisp/pkg/css"
	"wisp/pkg/html"
	"wisp/pkg/layout"
)

func paint(t *testing.T, markup, style string) *Renderer {
	t.Helper()
	document := html.Parse(markup).Document()
	view := layout.NewLayoutView(document, css.ParseString(style))
	r := New()
	r.Paint(view)
	return r
}

func pixel(t *testing.T, r *Renderer, x, y int) (uint8, uint8, uint8) {
	t.Helper()
	c := r.Image().At(x, y)
	cr, cg, cb, _ := c.RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8)
}

func TestPaintFillsWindowWhite(t *testing.T) {
	r := paint(t, "<html><head></head><body></body></html>", "")
	cr, cg, cb := pixel(t, r, 0, 0)
	assert.Equal(t, [3]uint8{0xff, 0xff, 0xff}, [3]uint8{cr, cg, cb})
}

func TestPaintBlockBackground(t *testing.T) {
	r := paint(t,
		"<html><head></head><body><p>x</p></body></html>",
		"p { background-color: red }")

	// Inside the p box, shifted past the window padding and clear of the
	// glyph the text paints.
	cr, cg, cb := pixel(t, r, layout.WindowPadding+300, layout.WindowPadding+2)
	assert.Equal(t, [3]uint8{0xff, 0x00, 0x00}, [3]uint8{cr, cg, cb})

	// Below the p box the window is still white.
	cr, cg, cb = pixel(t, r, layout.WindowPadding+2, layout.WindowPadding+layout.CharHeightWithPadding+50)
	assert.Equal(t, [3]uint8{0xff, 0xff, 0xff}, [3]uint8{cr, cg, cb})
}

func TestPaintEmptyView(t *testing.T) {
	document := html.NewDocumentNode()
	view := layout.NewLayoutView(document, css.ParseString(""))
	require.Nil(t, view.Root())

	r := New()
	r.Paint(view)
	cr, cg, cb := pixel(t, r, 100, 100)
	assert.Equal(t, [3]uint8{0xff, 0xff, 0xff}, [3]uint8{cr, cg, cb})
}

func TestSavePNG(t *testing.T) {
	r := paint(t, "<html><head></head><body><h1>Title</h1></body></html>", "")
	path := t.TempDir() + "/page.png"
	require.NoError(t, r.SavePNG(path))
}

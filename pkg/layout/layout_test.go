package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wisp/pkg/css"
	"wisp/pkg/html"
)

func buildView(t *testing.T, markup, style string) *LayoutView {
	t.Helper()
	document := html.Parse(markup).Document()
	return NewLayoutView(document, css.ParseString(style))
}

func page(body string) string {
	return "<html><head></head><body>" + body + "</body></html>"
}

func TestViewRootIsBody(t *testing.T) {
	view := buildView(t, page("<p>hi</p>"), "")
	root := view.Root()
	require.NotNil(t, root)
	assert.Equal(t, LayoutObjectBlock, root.Kind())
	kind, _ := root.Node().ElementKind()
	assert.Equal(t, html.ElementKindBody, kind)
	assert.Equal(t, ContentAreaWidth, root.Size().Width)
}

func TestViewWithoutBodyIsEmpty(t *testing.T) {
	document := html.NewDocumentNode()
	view := NewLayoutView(document, css.ParseString(""))
	assert.Nil(t, view.Root())
	assert.Contains(t, DumpView(view), "empty view")
}

func TestDisplayNoneHidesBody(t *testing.T) {
	view := buildView(t, page("<p>hi</p>"), "body { display: none }")
	assert.Nil(t, view.Root())
}

func TestDisplayNoneSkipsToSibling(t *testing.T) {
	view := buildView(t,
		page(`<p id="banner">a</p><p id="content">b</p>`),
		"#banner { display: none }")

	first := view.Root().FirstChild()
	require.NotNil(t, first)
	id, _ := first.Node().Element().Attribute("id")
	assert.Equal(t, "content", id)
	assert.Nil(t, first.NextSibling())
}

func TestDisplayNoneHidesWholeSubtree(t *testing.T) {
	view := buildView(t,
		page(`<p id="menu"><a href="/">home</a></p>`),
		"#menu { display: none }")
	assert.Nil(t, view.Root().FirstChild())
}

func TestStyledNodeKinds(t *testing.T) {
	view := buildView(t, page(`<p><a href="/">x</a></p>`), "")

	p := view.Root().FirstChild()
	require.NotNil(t, p)
	assert.Equal(t, LayoutObjectBlock, p.Kind())

	a := p.FirstChild()
	require.NotNil(t, a)
	assert.Equal(t, LayoutObjectInline, a.Kind())

	text := a.FirstChild()
	require.NotNil(t, text)
	assert.Equal(t, LayoutObjectText, text.Kind())
}

func TestCascadedStyleOverridesDefault(t *testing.T) {
	view := buildView(t, page(`<p class="warn">x</p>`), ".warn { color: red }")

	p := view.Root().FirstChild()
	require.NotNil(t, p)
	assert.Equal(t, "red", p.Style().Color().Name)
	// Text inherits the non-default color from its parent.
	assert.Equal(t, "red", p.FirstChild().Style().Color().Name)
}

func TestTextSize(t *testing.T) {
	view := buildView(t, page("<p>hello</p>"), "")

	text := view.Root().FirstChild().FirstChild()
	require.NotNil(t, text)
	assert.Equal(t, Size{Width: 5 * CharWidth, Height: CharHeightWithPadding}, text.Size())
}

func TestTextWrapsAtContentWidth(t *testing.T) {
	// 80 chars at medium size is 640px, just over one 590px line.
	long := strings.Repeat("x", 80)
	view := buildView(t, page("<p>"+long+"</p>"), "")

	text := view.Root().FirstChild().FirstChild()
	require.NotNil(t, text)
	assert.Equal(t, ContentAreaWidth, text.Size().Width)
	assert.Equal(t, 2*CharHeightWithPadding, text.Size().Height)
}

func TestHeadingTextScales(t *testing.T) {
	view := buildView(t, page("<h1>hi</h1>"), "")

	text := view.Root().FirstChild().FirstChild()
	require.NotNil(t, text)
	assert.Equal(t, Size{Width: 2 * CharWidth * 3, Height: CharHeightWithPadding * 3}, text.Size())
}

func TestBlockWidthFillsParent(t *testing.T) {
	view := buildView(t, page("<p>x</p>"), "")

	p := view.Root().FirstChild()
	require.NotNil(t, p)
	assert.Equal(t, ContentAreaWidth, p.Size().Width)
	assert.Equal(t, CharHeightWithPadding, p.Size().Height)
}

func TestBlocksStackVertically(t *testing.T) {
	view := buildView(t, page("<p>a</p><p>b</p>"), "")

	p1 := view.Root().FirstChild()
	require.NotNil(t, p1)
	p2 := p1.NextSibling()
	require.NotNil(t, p2)

	assert.Equal(t, Point{X: 0, Y: 0}, p1.Point())
	assert.Equal(t, Point{X: 0, Y: p1.Size().Height}, p2.Point())
	assert.Equal(t, p1.Size().Height+p2.Size().Height, view.Root().Size().Height)
}

func TestInlineRunFlowsHorizontally(t *testing.T) {
	view := buildView(t, page(`<p><a href="/a">go</a><a href="/b">stop</a></p>`), "")

	a1 := view.Root().FirstChild().FirstChild()
	require.NotNil(t, a1)
	a2 := a1.NextSibling()
	require.NotNil(t, a2)

	assert.Equal(t, a1.Point().X+a1.Size().Width, a2.Point().X)
	assert.Equal(t, a1.Point().Y, a2.Point().Y)
}

func TestInlineRunBetweenBlocksCountsOnce(t *testing.T) {
	view := buildView(t,
		page(`<p>a</p><a href="/x">x</a><a href="/y">y</a><p>b</p>`), "")

	root := view.Root()
	h := CharHeightWithPadding
	// p, the two-anchor run, and p again: three vertical steps.
	assert.Equal(t, 3*h, root.Size().Height)

	p1 := root.FirstChild()
	a1 := p1.NextSibling()
	a2 := a1.NextSibling()
	p2 := a2.NextSibling()
	require.NotNil(t, p2)

	assert.Equal(t, Point{X: 0, Y: h}, a1.Point())
	assert.Equal(t, Point{X: a1.Size().Width, Y: h}, a2.Point())
	assert.Equal(t, Point{X: 0, Y: 2 * h}, p2.Point())
}

func TestUpdateLayoutIsIdempotent(t *testing.T) {
	view := buildView(t, page("<p>a</p><h2>b</h2><a href=x>c</a>"), "h2 { background-color: gray }")

	before := DumpView(view)
	view.UpdateLayout()
	view.UpdateLayout()
	assert.Equal(t, before, DumpView(view))
}

func TestUpdateKindRejectsDisplayNone(t *testing.T) {
	node := html.NewElementNode(html.NewElement(html.ElementKindP, nil))
	obj := NewLayoutObject(node, nil)
	obj.Style().SetDisplay(css.DisplayNone)
	assert.Panics(t, func() { obj.UpdateKind() })
}

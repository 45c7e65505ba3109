package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendChildLinks(t *testing.T) {
	parent := NewElementNode(NewElement(ElementKindBody, nil))
	first := NewTextNode("a")
	second := NewElementNode(NewElement(ElementKindP, nil))

	parent.AppendChild(first)
	require.Same(t, first, parent.FirstChild())
	require.Same(t, first, parent.LastChild())
	require.Same(t, parent, first.Parent())

	parent.AppendChild(second)
	require.Same(t, first, parent.FirstChild())
	require.Same(t, second, parent.LastChild())
	require.Same(t, second, first.NextSibling())
	require.Same(t, first, second.PreviousSibling())
	require.Same(t, parent, second.Parent())
	require.Nil(t, second.NextSibling())
}

func TestAppendTextOnlyOnTextNodes(t *testing.T) {
	text := NewTextNode("ab")
	text.AppendText("c")
	assert.Equal(t, "abc", text.Text())

	element := NewElementNode(NewElement(ElementKindP, nil))
	assert.Panics(t, func() { element.AppendText("x") })
}

func TestElementKindRoundTrip(t *testing.T) {
	for kind, name := range elementKindNames {
		got, err := ElementKindFromString(name)
		require.NoError(t, err)
		assert.Equal(t, kind, got)
		assert.Equal(t, name, kind.String())
	}
	_, err := ElementKindFromString("div")
	assert.Error(t, err)
}

func TestFindElementByKindPrefersChildren(t *testing.T) {
	document := Parse("<html><head><style>s</style></head><body><p></p><h1></h1></body></html>").Document()

	body := FindElementByKind(document, ElementKindBody)
	require.NotNil(t, body)
	kind, _ := body.ElementKind()
	assert.Equal(t, ElementKindBody, kind)

	h1 := FindElementByKind(document, ElementKindH1)
	require.NotNil(t, h1)
	assert.Nil(t, FindElementByKind(document, ElementKindA))
}

func TestStyleContentWithoutStyleElement(t *testing.T) {
	document := Parse("<html><head></head><body></body></html>").Document()
	assert.Equal(t, "", StyleContent(document))
}

func TestDumpTreeShape(t *testing.T) {
	document := Parse(`<html><head></head><body><p id="x">hi</p></body></html>`).Document()

	dump := DumpTree(document)
	for _, want := range []string{"#document", "<html>", "<head>", "<body>", `<p id="x">`, `"hi"`} {
		assert.Contains(t, dump, want)
	}
	assert.Equal(t, 6, strings.Count(dump, "\n"))
}

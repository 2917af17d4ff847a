package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QTMarketing/lama-cms/pkg/blocks"
)

func TestParseBasicBlocks(t *testing.T) {
	doc, err := Parse(`<p>Hello</p><h2>Title</h2><ul><li>one</li><li>two</li></ul><hr>`)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 4)

	assert.Equal(t, NodeParagraph, doc.Nodes[0].Type)
	assert.Equal(t, "Hello", doc.BlockText(0))

	assert.Equal(t, NodeHeading, doc.Nodes[1].Type)
	assert.Equal(t, 2, doc.Nodes[1].Level)

	require.Equal(t, NodeBulletList, doc.Nodes[2].Type)
	require.Len(t, doc.Nodes[2].Children, 2)
	assert.Equal(t, NodeListItem, doc.Nodes[2].Children[0].Type)

	assert.Equal(t, NodeHorizontalRule, doc.Nodes[3].Type)
}

func TestParseAccumulatesMarks(t *testing.T) {
	doc, err := Parse(`<p>a<strong><em>b</em></strong>c</p>`)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 1)

	children := doc.Nodes[0].Children
	require.Len(t, children, 3)
	assert.Empty(t, children[0].Marks)
	assert.True(t, children[1].HasMark(MarkBold))
	assert.True(t, children[1].HasMark(MarkItalic))
	assert.Empty(t, children[2].Marks)
}

func TestParseLinkCarriesHref(t *testing.T) {
	doc, err := Parse(`<p><a href="https://example.com">go</a></p>`)
	require.NoError(t, err)

	children := doc.Nodes[0].Children
	require.Len(t, children, 1)
	require.True(t, children[0].HasMark(MarkLink))
	assert.Equal(t, "https://example.com", children[0].Marks[0].Href)
}

func TestParseImageAttributes(t *testing.T) {
	doc, err := Parse(`<img src="/a.png" alt="hi" data-width="320" data-align="center">`)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 1)

	n := doc.Nodes[0]
	require.Equal(t, NodeImage, n.Type)
	require.NotNil(t, n.Attrs)
	assert.Equal(t, "/a.png", n.Attrs.Src)
	assert.Equal(t, "hi", n.Attrs.Alt)
	assert.Equal(t, 320.0, n.Attrs.Width)
	assert.Equal(t, "center", n.Attrs.TextAlign)
	assert.True(t, n.Atomic())
}

func TestParseEmptyContentYieldsParagraph(t *testing.T) {
	doc, err := Parse("")
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, NodeParagraph, doc.Nodes[0].Type)
	assert.True(t, doc.Empty())
}

func TestParseMalformedWidgetYieldsNilBlock(t *testing.T) {
	doc, err := Parse(`<div data-type="widget" data-block="not json">junk</div>`)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 1)

	n := doc.Nodes[0]
	assert.Equal(t, NodeWidget, n.Type)
	assert.Nil(t, n.Block)
	assert.True(t, n.Atomic())
}

func TestParseUnknownElementsDescended(t *testing.T) {
	doc, err := Parse(`<section><p>inside</p></section>`)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, "inside", doc.BlockText(0))
}

func TestSerializeRoundTripStable(t *testing.T) {
	in := `<p>Hello <strong>bold</strong> and <em>fancy</em></p>` +
		`<h3>Title</h3>` +
		`<ol><li>first</li></ol>` +
		`<blockquote><p>quoted</p></blockquote>` +
		`<hr>`

	doc, err := Parse(in)
	require.NoError(t, err)
	once := Serialize(doc)

	doc2, err := Parse(once)
	require.NoError(t, err)
	assert.Equal(t, once, Serialize(doc2))
}

func TestSerializeMarkNestingOrder(t *testing.T) {
	d := &Document{Nodes: []*Node{{
		Type: NodeParagraph,
		Children: []*Node{
			textNode("x", Mark{Type: MarkItalic}, Mark{Type: MarkBold}, Mark{Type: MarkLink, Href: "/y"}),
		},
	}}}

	assert.Equal(t, `<p><a href="/y"><strong><em>x</em></strong></a></p>`, Serialize(d))
}

func TestSerializeEscapesText(t *testing.T) {
	d := &Document{Nodes: []*Node{{
		Type:     NodeParagraph,
		Children: []*Node{textNode(`<script>&`)},
	}}}

	out := Serialize(d)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;&amp;")
}

func TestWidgetSurvivesRoundTrip(t *testing.T) {
	b := blocks.New(blocks.TypeButton)
	b.Content["text"] = "Buy"

	doc := NewDocument()
	InsertWidget(doc, Caret(Pos{Block: 0, Offset: 0}), b)

	out := Serialize(doc)
	assert.Contains(t, out, `data-type="widget"`)

	again, err := Parse(out)
	require.NoError(t, err)

	_, n, ok := FindWidget(again, b.Id)
	require.True(t, ok)
	require.NotNil(t, n.Block)
	assert.Equal(t, blocks.TypeButton, n.Block.Type)
	assert.Equal(t, "Buy", n.Block.Content["text"])
	require.NotNil(t, n.Block.Styles)
	assert.Equal(t, "#2563EB", n.Block.Styles.BackgroundColor)
}

func TestWidgetPreviewRegeneratedNotParsed(t *testing.T) {
	b := blocks.New(blocks.TypeSpacer)
	doc := NewDocument()
	InsertWidget(doc, Caret(Pos{Block: 0, Offset: 0}), b)

	out := Serialize(doc)
	require.Contains(t, out, "widget-preview")

	again, err := Parse(out)
	require.NoError(t, err)
	// the preview markup inside the widget div never becomes document nodes
	count := 0
	for _, n := range again.Nodes {
		if n.Type == NodeWidget {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, strings.Count(out, "widget-preview-header"), strings.Count(Serialize(again), "widget-preview-header"))
}

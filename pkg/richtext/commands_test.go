package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QTMarketing/lama-cms/pkg/blocks"
)

func para(text string) *Node {
	return &Node{Type: NodeParagraph, Children: []*Node{textNode(text)}}
}

func rangeSel(b1, o1, b2, o2 int) Selection {
	return Selection{Anchor: Pos{Block: b1, Offset: o1}, Head: Pos{Block: b2, Offset: o2}}
}

func TestInsertTextAtCaret(t *testing.T) {
	d := &Document{Nodes: []*Node{para("helo")}}
	end := InsertText(d, Caret(Pos{Block: 0, Offset: 3}), "l")

	assert.Equal(t, "hello", d.BlockText(0))
	assert.Equal(t, Pos{Block: 0, Offset: 4}, end)
}

func TestInsertTextReplacesRange(t *testing.T) {
	d := &Document{Nodes: []*Node{para("hello world")}}
	InsertText(d, rangeSel(0, 6, 0, 11), "there")

	assert.Equal(t, "hello there", d.BlockText(0))
}

func TestDeleteRangeWithinBlock(t *testing.T) {
	d := &Document{Nodes: []*Node{para("hello world")}}
	DeleteRange(d, rangeSel(0, 5, 0, 11))

	assert.Equal(t, "hello", d.BlockText(0))
}

func TestDeleteRangeCollapsedIsNoop(t *testing.T) {
	d := &Document{Nodes: []*Node{para("hello")}}
	DeleteRange(d, Caret(Pos{Block: 0, Offset: 2}))

	assert.Equal(t, "hello", d.BlockText(0))
}

func TestDeleteRangeAcrossBlocksMerges(t *testing.T) {
	d := &Document{Nodes: []*Node{para("first line"), para("middle"), para("last line")}}
	DeleteRange(d, rangeSel(0, 5, 2, 4))

	require.Len(t, d.Nodes, 1)
	assert.Equal(t, "first line", d.BlockText(0))
}

func TestDeleteRangeReversedSelection(t *testing.T) {
	d := &Document{Nodes: []*Node{para("hello world")}}
	DeleteRange(d, rangeSel(0, 11, 0, 5))

	assert.Equal(t, "hello", d.BlockText(0))
}

func TestDeleteRangeAnchoredOnWidgetKeepsTail(t *testing.T) {
	b := blocks.New(blocks.TypeButton)
	d := &Document{Nodes: []*Node{
		{Type: NodeWidget, Block: &b},
		para("hello world"),
	}}
	DeleteRange(d, rangeSel(0, 0, 1, 6))

	require.Len(t, d.Nodes, 1)
	assert.Equal(t, NodeParagraph, d.Nodes[0].Type)
	assert.Equal(t, "world", d.BlockText(0))
	assert.Contains(t, Serialize(d), "world")
}

func TestDeleteRangeSpanningOnlyAtomsLeavesParagraph(t *testing.T) {
	b := blocks.New(blocks.TypeButton)
	d := &Document{Nodes: []*Node{
		{Type: NodeWidget, Block: &b},
		{Type: NodeHorizontalRule},
	}}
	DeleteRange(d, rangeSel(0, 0, 1, 0))

	require.Len(t, d.Nodes, 1)
	assert.Equal(t, NodeParagraph, d.Nodes[0].Type)
}

func TestInsertWidgetSplitsHostBlock(t *testing.T) {
	d := &Document{Nodes: []*Node{para("hello")}}
	b := blocks.New(blocks.TypeDivider)

	idx := InsertWidget(d, Caret(Pos{Block: 0, Offset: 2}), b)

	require.Equal(t, 1, idx)
	require.Len(t, d.Nodes, 3)
	assert.Equal(t, "he", d.BlockText(0))
	assert.Equal(t, NodeWidget, d.Nodes[1].Type)
	assert.Equal(t, "llo", d.BlockText(2))
}

func TestInsertWidgetAtBlockBoundaries(t *testing.T) {
	d := &Document{Nodes: []*Node{para("text")}}
	idx := InsertWidget(d, Caret(Pos{Block: 0, Offset: 0}), blocks.New(blocks.TypeSpacer))
	require.Equal(t, 0, idx)
	require.Len(t, d.Nodes, 2)
	assert.Equal(t, NodeWidget, d.Nodes[0].Type)

	idx = InsertWidget(d, Caret(Pos{Block: 1, Offset: 4}), blocks.New(blocks.TypeSpacer))
	assert.Equal(t, 2, idx)
	require.Len(t, d.Nodes, 3)
}

func TestInsertWidgetEmbedsCopy(t *testing.T) {
	d := NewDocument()
	b := blocks.New(blocks.TypeText)
	InsertWidget(d, Caret(Pos{Block: 0, Offset: 0}), b)

	b.Content["text"] = "mutated after insert"
	_, n, ok := FindWidget(d, b.Id)
	require.True(t, ok)
	assert.Equal(t, "", n.Block.ContentString("text"))
}

func TestInsertImage(t *testing.T) {
	d := &Document{Nodes: []*Node{para("pic here")}}
	idx := InsertImage(d, Caret(Pos{Block: 0, Offset: 8}), ImageAttrs{Src: "/x.png", Alt: "x"})

	require.Equal(t, 1, idx)
	require.Equal(t, NodeImage, d.Nodes[1].Type)
	assert.Equal(t, "/x.png", d.Nodes[1].Attrs.Src)
}

func TestInsertAfterAtomicHost(t *testing.T) {
	d := &Document{Nodes: []*Node{{Type: NodeHorizontalRule}}}
	idx := InsertHorizontalRule(d, Caret(Pos{Block: 0, Offset: 0}))

	assert.Equal(t, 1, idx)
	require.Len(t, d.Nodes, 2)
}

func TestToggleHeading(t *testing.T) {
	d := &Document{Nodes: []*Node{para("title")}}

	ToggleHeading(d, 0, 2)
	assert.Equal(t, NodeHeading, d.Nodes[0].Type)
	assert.Equal(t, 2, d.Nodes[0].Level)

	ToggleHeading(d, 0, 3)
	assert.Equal(t, 3, d.Nodes[0].Level)

	ToggleHeading(d, 0, 3)
	assert.Equal(t, NodeParagraph, d.Nodes[0].Type)
	assert.Equal(t, 0, d.Nodes[0].Level)
	assert.Equal(t, "title", d.BlockText(0))
}

func TestToggleBulletListWrapsAndUnwraps(t *testing.T) {
	d := &Document{Nodes: []*Node{para("item")}}

	ToggleBulletList(d, 0)
	require.Equal(t, NodeBulletList, d.Nodes[0].Type)
	require.Len(t, d.Nodes[0].Children, 1)
	assert.Equal(t, NodeListItem, d.Nodes[0].Children[0].Type)

	ToggleBulletList(d, 0)
	require.Equal(t, NodeParagraph, d.Nodes[0].Type)
	assert.Equal(t, "item", d.BlockText(0))
}

func TestToggleOrderedListUnwrapsEveryItem(t *testing.T) {
	d := &Document{Nodes: []*Node{{
		Type: NodeOrderedList,
		Children: []*Node{
			{Type: NodeListItem, Children: []*Node{textNode("one")}},
			{Type: NodeListItem, Children: []*Node{textNode("two")}},
		},
	}}}

	ToggleOrderedList(d, 0)
	require.Len(t, d.Nodes, 2)
	assert.Equal(t, "one", d.BlockText(0))
	assert.Equal(t, "two", d.BlockText(1))
}

func TestToggleBlockquote(t *testing.T) {
	d := &Document{Nodes: []*Node{para("quoted")}}

	ToggleBlockquote(d, 0)
	require.Equal(t, NodeBlockquote, d.Nodes[0].Type)

	ToggleBlockquote(d, 0)
	require.Equal(t, NodeParagraph, d.Nodes[0].Type)
	assert.Equal(t, "quoted", d.BlockText(0))
}

func TestToggleMarkAddsThenRemoves(t *testing.T) {
	d := &Document{Nodes: []*Node{para("hello world")}}
	sel := rangeSel(0, 0, 0, 5)

	ToggleMark(d, sel, MarkBold)
	assert.Equal(t, "hello", boldText(d.Nodes[0]))

	ToggleMark(d, sel, MarkBold)
	assert.Equal(t, "", boldText(d.Nodes[0]))
	assert.Equal(t, "hello world", d.BlockText(0))
}

func TestToggleMarkPartialCoverageAdds(t *testing.T) {
	d := &Document{Nodes: []*Node{para("hello world")}}

	ToggleMark(d, rangeSel(0, 0, 0, 5), MarkBold)
	// the second range overlaps marked and unmarked text, so it adds
	ToggleMark(d, rangeSel(0, 3, 0, 8), MarkBold)

	assert.Equal(t, "hello wo", boldText(d.Nodes[0]))
}

func TestToggleMarkCollapsedIsNoop(t *testing.T) {
	d := &Document{Nodes: []*Node{para("hello")}}
	ToggleMark(d, Caret(Pos{Block: 0, Offset: 2}), MarkItalic)
	assert.Equal(t, "", boldText(d.Nodes[0]))
	for _, c := range d.Nodes[0].Children {
		assert.Empty(t, c.Marks)
	}
}

func TestApplyLink(t *testing.T) {
	d := &Document{Nodes: []*Node{para("click here")}}
	sel := rangeSel(0, 0, 0, 5)

	ApplyLink(d, sel, "https://example.com")
	require.True(t, d.Nodes[0].Children[0].HasMark(MarkLink))

	// re-applying with a new href replaces, never stacks
	ApplyLink(d, sel, "https://other.dev")
	first := d.Nodes[0].Children[0]
	count := 0
	for _, m := range first.Marks {
		if m.Type == MarkLink {
			count++
			assert.Equal(t, "https://other.dev", m.Href)
		}
	}
	assert.Equal(t, 1, count)

	ApplyLink(d, sel, "")
	assert.False(t, d.Nodes[0].Children[0].HasMark(MarkLink))
}

func boldText(n *Node) string {
	out := ""
	for _, c := range n.Children {
		if c.Type == NodeText && c.HasMark(MarkBold) {
			out += c.Text
		}
	}
	return out
}

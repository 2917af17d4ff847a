package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QTMarketing/lama-cms/pkg/blocks"
)

func docWithWidget(t *testing.T, b blocks.Block) *Document {
	t.Helper()
	d := &Document{Nodes: []*Node{para("before"), para("after")}}
	InsertWidget(d, Caret(Pos{Block: 1, Offset: 0}), b)
	return d
}

func TestFindWidgetResolvesById(t *testing.T) {
	b := blocks.New(blocks.TypeButton)
	d := docWithWidget(t, b)

	idx, n, ok := FindWidget(d, b.Id)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, NodeWidget, n.Type)

	_, _, ok = FindWidget(d, "missing")
	assert.False(t, ok)
}

func TestUpdateWidgetPreservesId(t *testing.T) {
	b := blocks.New(blocks.TypeText)
	d := docWithWidget(t, b)

	replacement := blocks.New(blocks.TypeText)
	replacement.Content["text"] = "fresh copy"

	require.True(t, UpdateWidget(d, b.Id, replacement))

	_, n, ok := FindWidget(d, b.Id)
	require.True(t, ok)
	assert.Equal(t, b.Id, n.Block.Id)
	assert.Equal(t, "fresh copy", n.Block.ContentString("text"))
}

func TestUpdateWidgetUnknownIdIsNoop(t *testing.T) {
	b := blocks.New(blocks.TypeText)
	d := docWithWidget(t, b)

	assert.False(t, UpdateWidget(d, "missing", blocks.New(blocks.TypeText)))
}

func TestPatchWidgetMergesContent(t *testing.T) {
	b := blocks.New(blocks.TypeButton)
	d := docWithWidget(t, b)

	ok := PatchWidget(d, b.Id, blocks.Patch{Content: map[string]any{"text": "Go"}})
	require.True(t, ok)

	_, n, _ := FindWidget(d, b.Id)
	assert.Equal(t, "Go", n.Block.ContentString("text"))
	// untouched content keys survive the merge
	assert.Equal(t, "_self", n.Block.ContentString("target"))
}

func TestRemoveWidget(t *testing.T) {
	b := blocks.New(blocks.TypeSpacer)
	d := docWithWidget(t, b)

	require.True(t, RemoveWidget(d, b.Id))
	_, _, ok := FindWidget(d, b.Id)
	assert.False(t, ok)
	assert.Len(t, d.Nodes, 2)

	assert.False(t, RemoveWidget(d, b.Id))
}

func TestRemoveLastWidgetLeavesEditableParagraph(t *testing.T) {
	b := blocks.New(blocks.TypeDivider)
	d := &Document{Nodes: []*Node{{Type: NodeWidget, Block: &b}}}

	require.True(t, RemoveWidget(d, b.Id))
	require.Len(t, d.Nodes, 1)
	assert.Equal(t, NodeParagraph, d.Nodes[0].Type)
}

func TestButtonWidgetEditFlow(t *testing.T) {
	b := blocks.New(blocks.TypeButton)
	d := NewDocument()
	InsertWidget(d, Caret(Pos{Block: 0, Offset: 0}), b)

	first := Serialize(d)
	assert.Contains(t, first, `data-type="widget"`)

	got := embeddedBlock(t, first, b.Id)
	assert.Equal(t, blocks.TypeButton, got.Type)
	assert.Equal(t, "Click Here", got.ContentString("text"))

	require.True(t, PatchWidget(d, b.Id, blocks.Patch{Content: map[string]any{"url": "/deals"}}))

	got = embeddedBlock(t, Serialize(d), b.Id)
	assert.Equal(t, "/deals", got.ContentString("url"))
	assert.Equal(t, "Click Here", got.ContentString("text"))
}

// embeddedBlock re-parses serialized HTML and returns the widget block with
// the given id as it survived the data-block attribute.
func embeddedBlock(t *testing.T, raw, blockId string) *blocks.Block {
	t.Helper()
	d, err := Parse(raw)
	require.NoError(t, err)
	_, n, ok := FindWidget(d, blockId)
	require.True(t, ok)
	require.NotNil(t, n.Block)
	return n.Block
}

func TestReassignWidgetIds(t *testing.T) {
	b1 := blocks.New(blocks.TypeText)
	b2 := blocks.New(blocks.TypeImage)
	d := &Document{Nodes: []*Node{
		{Type: NodeWidget, Block: &b1},
		para("middle"),
		{Type: NodeWidget, Block: &b2},
	}}

	ReassignWidgetIds(d)

	assert.NotEqual(t, b1.Id, d.Nodes[0].Block.Id)
	assert.NotEqual(t, b2.Id, d.Nodes[2].Block.Id)
	assert.NotEqual(t, d.Nodes[0].Block.Id, d.Nodes[2].Block.Id)
	// payload untouched
	assert.Equal(t, blocks.TypeText, d.Nodes[0].Block.Type)
}

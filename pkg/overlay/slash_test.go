package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QTMarketing/lama-cms/pkg/richtext"
)

func TestSlashMenuNavigationWraps(t *testing.T) {
	m := &SlashMenu{}
	assert.Equal(t, SlashHeading1, m.Highlighted().Id)

	m.Prev()
	assert.Equal(t, SlashQuote, m.Highlighted().Id)

	m.Next()
	assert.Equal(t, SlashHeading1, m.Highlighted().Id)

	for range SlashCommands {
		m.Next()
	}
	assert.Equal(t, SlashHeading1, m.Highlighted().Id)
}

func TestExecuteSlashCommandRemovesTriggerAndTransforms(t *testing.T) {
	d := mustParse(t, "<p>note /</p>")
	cursor := richtext.Pos{Block: 0, Offset: 6}

	modal, ok := ExecuteSlashCommand(d, cursor, SlashHeading1)
	require.True(t, ok)
	assert.False(t, modal)

	assert.Equal(t, richtext.NodeHeading, d.Nodes[0].Type)
	assert.Equal(t, 1, d.Nodes[0].Level)
	assert.Equal(t, "note ", d.BlockText(0))
}

func TestExecuteSlashCommandHeading2(t *testing.T) {
	d := mustParse(t, "<p>note /</p>")
	cursor := richtext.Pos{Block: 0, Offset: 6}

	modal, ok := ExecuteSlashCommand(d, cursor, SlashHeading2)
	require.True(t, ok)
	assert.False(t, modal)

	assert.Equal(t, richtext.NodeHeading, d.Nodes[0].Type)
	assert.Equal(t, 2, d.Nodes[0].Level)
	assert.Equal(t, "note ", d.BlockText(0))
}

func TestExecuteSlashCommandBulletList(t *testing.T) {
	d := mustParse(t, "<p>/</p>")
	_, ok := ExecuteSlashCommand(d, richtext.Pos{Block: 0, Offset: 1}, SlashBulletList)
	require.True(t, ok)
	assert.Equal(t, richtext.NodeBulletList, d.Nodes[0].Type)
}

func TestExecuteSlashCommandImageOpensModal(t *testing.T) {
	d := mustParse(t, "<p>/</p>")
	modal, ok := ExecuteSlashCommand(d, richtext.Pos{Block: 0, Offset: 1}, SlashImage)

	require.True(t, ok)
	assert.True(t, modal)
	// the trigger slash is removed even though no block transform ran
	assert.Equal(t, "", d.BlockText(0))
}

func TestExecuteSlashCommandWithoutTrigger(t *testing.T) {
	d := mustParse(t, "<p>plain</p>")
	_, ok := ExecuteSlashCommand(d, richtext.Pos{Block: 0, Offset: 5}, SlashHeading1)

	assert.False(t, ok)
	assert.Equal(t, richtext.NodeParagraph, d.Nodes[0].Type)
	assert.Equal(t, "plain", d.BlockText(0))
}

func TestFilterInsertItems(t *testing.T) {
	assert.Len(t, FilterInsertItems(""), len(InsertItems))
	assert.Len(t, FilterInsertItems("   "), len(InsertItems))

	got := FilterInsertItems("hea")
	require.Len(t, got, 1)
	assert.Equal(t, InsertHeading, got[0].Id)

	got = FilterInsertItems("IMAGE")
	require.Len(t, got, 1)
	assert.Equal(t, InsertImageItem, got[0].Id)

	assert.Empty(t, FilterInsertItems("zzz"))
}

func TestExecuteInsertItem(t *testing.T) {
	d := mustParse(t, "<p>body</p>")
	modal, ok := ExecuteInsertItem(d, richtext.Pos{Block: 0, Offset: 0}, InsertHeading)
	require.True(t, ok)
	assert.False(t, modal)
	assert.Equal(t, richtext.NodeHeading, d.Nodes[0].Type)

	d = mustParse(t, "<p>body</p>")
	modal, ok = ExecuteInsertItem(d, richtext.Pos{Block: 0, Offset: 4}, InsertSeparator)
	require.True(t, ok)
	assert.False(t, modal)
	require.Len(t, d.Nodes, 2)
	assert.Equal(t, richtext.NodeHorizontalRule, d.Nodes[1].Type)

	d = mustParse(t, "<p>body</p>")
	modal, ok = ExecuteInsertItem(d, richtext.Pos{Block: 0, Offset: 0}, InsertImageItem)
	require.True(t, ok)
	assert.True(t, modal)
	assert.Equal(t, "body", d.BlockText(0))

	_, ok = ExecuteInsertItem(d, richtext.Pos{Block: 0, Offset: 0}, InsertItemId("bogus"))
	assert.False(t, ok)
}

func TestExecuteBubbleCommand(t *testing.T) {
	d := mustParse(t, "<p>hello world</p>")
	sel := richtext.Selection{
		Anchor: richtext.Pos{Block: 0, Offset: 0},
		Head:   richtext.Pos{Block: 0, Offset: 5},
	}

	require.True(t, ExecuteBubbleCommand(d, sel, BubbleBold, ""))
	assert.True(t, d.Nodes[0].Children[0].HasMark(richtext.MarkBold))

	require.True(t, ExecuteBubbleCommand(d, sel, BubbleLink, "https://example.com"))
	assert.True(t, d.Nodes[0].Children[0].HasMark(richtext.MarkLink))

	require.True(t, ExecuteBubbleCommand(d, sel, BubbleHeading2, ""))
	assert.Equal(t, richtext.NodeHeading, d.Nodes[0].Type)
}

func TestExecuteBubbleCommandCollapsedSelection(t *testing.T) {
	d := mustParse(t, "<p>hello</p>")
	ok := ExecuteBubbleCommand(d, richtext.Caret(richtext.Pos{Block: 0, Offset: 2}), BubbleBold, "")
	assert.False(t, ok)
}

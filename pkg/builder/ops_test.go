package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QTMarketing/lama-cms/pkg/blocks"
)

func twoSectionLayout() []Section {
	s1 := NewSection()
	s2 := NewSection()
	return []Section{s1, s2}
}

func TestAddSectionAppends(t *testing.T) {
	in := twoSectionLayout()
	out := AddSection(in)

	require.Len(t, out, 3)
	assert.Len(t, in, 2)
	assert.Equal(t, SectionDefault, out[2].Type)
	require.Len(t, out[2].Columns, 1)
	assert.Equal(t, 100.0, out[2].Columns[0].Width)
}

func TestDeleteSection(t *testing.T) {
	in := twoSectionLayout()
	out, removed := DeleteSection(in, in[0].Id)

	require.True(t, removed)
	require.Len(t, out, 1)
	assert.Equal(t, in[1].Id, out[0].Id)
	assert.Len(t, in, 2)
}

func TestDeleteSectionUnknownId(t *testing.T) {
	in := twoSectionLayout()
	out, removed := DeleteSection(in, "nope")

	assert.False(t, removed)
	assert.Len(t, out, 2)
}

func TestAddColumnReflowsWidths(t *testing.T) {
	in := []Section{NewSection()}
	out, ok := AddColumn(in, in[0].Id)
	require.True(t, ok)
	require.Len(t, out[0].Columns, 2)
	assert.Equal(t, 50.0, out[0].Columns[0].Width)
	assert.Equal(t, 50.0, out[0].Columns[1].Width)

	out, ok = AddColumn(out, out[0].Id)
	require.True(t, ok)
	require.Len(t, out[0].Columns, 3)
	for _, c := range out[0].Columns {
		assert.InDelta(t, 100.0/3.0, c.Width, 0.0001)
	}

	// original untouched
	require.Len(t, in[0].Columns, 1)
	assert.Equal(t, 100.0, in[0].Columns[0].Width)
}

func TestAddColumnUnknownSection(t *testing.T) {
	in := []Section{NewSection()}
	_, ok := AddColumn(in, "nope")
	assert.False(t, ok)
}

func TestDeleteColumnReflows(t *testing.T) {
	in := []Section{NewSection()}
	withTwo, _ := AddColumn(in, in[0].Id)
	withThree, _ := AddColumn(withTwo, withTwo[0].Id)

	out, ok := DeleteColumn(withThree, withThree[0].Id, withThree[0].Columns[1].Id)
	require.True(t, ok)
	require.Len(t, out[0].Columns, 2)
	assert.Equal(t, 50.0, out[0].Columns[0].Width)
	assert.Equal(t, 50.0, out[0].Columns[1].Width)
}

func TestDeleteColumnKeepsFloorOfOne(t *testing.T) {
	in := []Section{NewSection()}
	out, ok := DeleteColumn(in, in[0].Id, in[0].Columns[0].Id)

	assert.False(t, ok)
	require.Len(t, out[0].Columns, 1)
}

func TestAddBlockReturnsCreated(t *testing.T) {
	in := []Section{NewSection()}
	out, b, ok := AddBlock(in, in[0].Id, in[0].Columns[0].Id, blocks.TypeHeading)

	require.True(t, ok)
	assert.Equal(t, blocks.TypeHeading, b.Type)
	require.Len(t, out[0].Columns[0].Blocks, 1)
	assert.Equal(t, b.Id, out[0].Columns[0].Blocks[0].Id)
	assert.Empty(t, in[0].Columns[0].Blocks)
}

func TestAddBlockUnknownColumn(t *testing.T) {
	in := []Section{NewSection()}
	_, _, ok := AddBlock(in, in[0].Id, "nope", blocks.TypeText)
	assert.False(t, ok)
}

func TestUpdateBlockMergesPatch(t *testing.T) {
	in := []Section{NewSection()}
	in, b, _ := AddBlock(in, in[0].Id, in[0].Columns[0].Id, blocks.TypeButton)

	out, ok := UpdateBlock(in, in[0].Id, in[0].Columns[0].Id, b.Id, blocks.Patch{
		Content: map[string]any{"text": "Buy now"},
	})
	require.True(t, ok)

	got := out[0].Columns[0].Blocks[0]
	assert.Equal(t, "Buy now", got.Content["text"])
	// untouched keys from the factory defaults survive
	require.NotNil(t, got.Styles)
	assert.Equal(t, "#2563EB", got.Styles.BackgroundColor)

	// the source tree still holds the factory content
	assert.Equal(t, "Click Here", in[0].Columns[0].Blocks[0].Content["text"])
}

func TestDeleteBlock(t *testing.T) {
	in := []Section{NewSection()}
	in, b, _ := AddBlock(in, in[0].Id, in[0].Columns[0].Id, blocks.TypeText)

	out, ok := DeleteBlock(in, in[0].Id, in[0].Columns[0].Id, b.Id)
	require.True(t, ok)
	assert.Empty(t, out[0].Columns[0].Blocks)
	assert.Len(t, in[0].Columns[0].Blocks, 1)

	_, ok = DeleteBlock(in, in[0].Id, in[0].Columns[0].Id, "nope")
	assert.False(t, ok)
}

func TestMoveSectionSplices(t *testing.T) {
	a, b, c := NewSection(), NewSection(), NewSection()
	in := []Section{a, b, c}

	out := MoveSection(in, 0, 2)
	require.Len(t, out, 3)
	assert.Equal(t, []string{b.Id, c.Id, a.Id}, []string{out[0].Id, out[1].Id, out[2].Id})

	out = MoveSection(in, 2, 0)
	assert.Equal(t, []string{c.Id, a.Id, b.Id}, []string{out[0].Id, out[1].Id, out[2].Id})

	// source order preserved
	assert.Equal(t, a.Id, in[0].Id)
}

func TestMoveSectionOutOfRangeIsNoop(t *testing.T) {
	in := twoSectionLayout()
	out := MoveSection(in, 0, 5)
	assert.Equal(t, in[0].Id, out[0].Id)
	assert.Equal(t, in[1].Id, out[1].Id)

	out = MoveSection(in, -1, 0)
	assert.Len(t, out, 2)
}

func TestMoveBlockAcrossSections(t *testing.T) {
	in := twoSectionLayout()
	in, b1, _ := AddBlock(in, in[0].Id, in[0].Columns[0].Id, blocks.TypeText)
	in, b2, _ := AddBlock(in, in[1].Id, in[1].Columns[0].Id, blocks.TypeImage)

	out, ok := MoveBlock(in, b1.Id, in[1].Id, in[1].Columns[0].Id, 0)
	require.True(t, ok)

	assert.Empty(t, out[0].Columns[0].Blocks)
	require.Len(t, out[1].Columns[0].Blocks, 2)
	assert.Equal(t, b1.Id, out[1].Columns[0].Blocks[0].Id)
	assert.Equal(t, b2.Id, out[1].Columns[0].Blocks[1].Id)

	// source layout untouched
	assert.Len(t, in[0].Columns[0].Blocks, 1)
	assert.Len(t, in[1].Columns[0].Blocks, 1)
}

func TestMoveBlockClampsDropIndex(t *testing.T) {
	in := []Section{NewSection()}
	in, b, _ := AddBlock(in, in[0].Id, in[0].Columns[0].Id, blocks.TypeText)

	out, ok := MoveBlock(in, b.Id, in[0].Id, in[0].Columns[0].Id, 99)
	require.True(t, ok)
	require.Len(t, out[0].Columns[0].Blocks, 1)

	out, ok = MoveBlock(in, b.Id, in[0].Id, in[0].Columns[0].Id, -3)
	require.True(t, ok)
	assert.Equal(t, b.Id, out[0].Columns[0].Blocks[0].Id)
}

func TestMoveBlockUnknownTarget(t *testing.T) {
	in := []Section{NewSection()}
	in, b, _ := AddBlock(in, in[0].Id, in[0].Columns[0].Id, blocks.TypeText)

	_, ok := MoveBlock(in, b.Id, "nope", "nope", 0)
	assert.False(t, ok)

	_, ok = MoveBlock(in, "missing", in[0].Id, in[0].Columns[0].Id, 0)
	assert.False(t, ok)
}

func TestFindAndLocateBlock(t *testing.T) {
	in := twoSectionLayout()
	in, b, _ := AddBlock(in, in[1].Id, in[1].Columns[0].Id, blocks.TypeSpacer)

	got, ok := FindBlock(in, b.Id)
	require.True(t, ok)
	assert.Equal(t, blocks.TypeSpacer, got.Type)

	sid, cid, ok := LocateBlock(in, b.Id)
	require.True(t, ok)
	assert.Equal(t, in[1].Id, sid)
	assert.Equal(t, in[1].Columns[0].Id, cid)

	_, _, ok = LocateBlock(in, "nope")
	assert.False(t, ok)
}

func TestSectionContainsBlock(t *testing.T) {
	in := twoSectionLayout()
	in, b, _ := AddBlock(in, in[0].Id, in[0].Columns[0].Id, blocks.TypeText)

	assert.True(t, SectionContainsBlock(in, in[0].Id, b.Id))
	assert.False(t, SectionContainsBlock(in, in[1].Id, b.Id))
}

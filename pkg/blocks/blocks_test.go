package blocks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignsUniqueIds(t *testing.T) {
	a := New(TypeText)
	b := New(TypeText)
	assert.NotEmpty(t, a.Id)
	assert.NotEqual(t, a.Id, b.Id)
}

func TestNewDefaults(t *testing.T) {
	spacer := New(TypeSpacer)
	h, ok := spacer.ContentNumber("height")
	require.True(t, ok)
	assert.Equal(t, float64(50), h)

	button := New(TypeButton)
	assert.Equal(t, "Click Here", button.ContentString("text"))
	require.NotNil(t, button.Styles)
	assert.Equal(t, "#2563EB", button.Styles.BackgroundColor)
	assert.Equal(t, "#FFFFFF", button.Styles.TextColor)
	require.NotNil(t, button.Styles.Padding)
	assert.Equal(t, float64(20), button.Styles.Padding.Left)

	heading := New(TypeHeading)
	level, ok := heading.ContentNumber("level")
	require.True(t, ok)
	assert.Equal(t, float64(2), level)
}

func TestNewUnknownTypeStillUsable(t *testing.T) {
	b := New(BlockType("bogus"))
	assert.NotEmpty(t, b.Id)
	assert.NotNil(t, b.Content)
	assert.False(t, b.IsConfigured())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	orig := New(TypeButton)
	orig.Content["url"] = "https://example.com"

	raw, err := Encode(orig)
	require.NoError(t, err)

	decoded := Decode(raw)
	require.NotNil(t, decoded)
	assert.Equal(t, orig.Id, decoded.Id)
	assert.Equal(t, orig.Type, decoded.Type)
	assert.Equal(t, orig.Content, decoded.Content)
	assert.Equal(t, orig.Styles, decoded.Styles)
}

func TestDecodeMalformed(t *testing.T) {
	assert.Nil(t, Decode(""))
	assert.Nil(t, Decode("{not json"))
	assert.Nil(t, Decode(`{"id":"x"}`)) // missing type
	assert.Nil(t, Decode(`[1,2,3]`))
}

func TestNumericDefaultsSurviveJSON(t *testing.T) {
	orig := New(TypeSpacer)

	raw, err := json.Marshal(orig)
	require.NoError(t, err)

	var back Block
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, orig.Content, back.Content)
}

func TestIsConfigured(t *testing.T) {
	b := New(TypeText)
	assert.False(t, b.IsConfigured(), "empty text is unconfigured")

	b.Content["text"] = "hello"
	assert.True(t, b.IsConfigured())

	g := New(TypeGallery)
	assert.False(t, g.IsConfigured())
	g.Content["images"] = []any{"a.png"}
	assert.True(t, g.IsConfigured())

	var nilBlock *Block
	assert.False(t, nilBlock.IsConfigured())
}

func TestCloneIsDeep(t *testing.T) {
	orig := New(TypeButton)
	clone := orig.Clone()

	clone.Content["text"] = "changed"
	clone.Styles.BackgroundColor = "#000000"
	clone.Styles.Padding.Top = 99

	assert.Equal(t, "Click Here", orig.ContentString("text"))
	assert.Equal(t, "#2563EB", orig.Styles.BackgroundColor)
	assert.Equal(t, float64(10), orig.Styles.Padding.Top)
}

func TestPatchApply(t *testing.T) {
	orig := New(TypeText)
	orig.Content["text"] = "before"

	patched := Patch{
		Content: map[string]any{"text": "after"},
		Styles:  &Styles{FontSize: 24},
	}.Apply(orig)

	assert.Equal(t, "after", patched.ContentString("text"))
	assert.Equal(t, float64(24), patched.Styles.FontSize)
	assert.Equal(t, orig.Id, patched.Id)

	// source untouched
	assert.Equal(t, "before", orig.ContentString("text"))
	assert.Equal(t, float64(16), orig.Styles.FontSize)
}

func TestPatchMergesContentKeys(t *testing.T) {
	orig := New(TypeButton)
	patched := Patch{Content: map[string]any{"url": "https://x.test"}}.Apply(orig)

	assert.Equal(t, "https://x.test", patched.ContentString("url"))
	assert.Equal(t, "Click Here", patched.ContentString("text"), "untouched keys survive")
}

func TestIsValidType(t *testing.T) {
	for _, bt := range AllTypes {
		assert.True(t, IsValidType(bt))
	}
	assert.False(t, IsValidType(BlockType("sidebar")))
}

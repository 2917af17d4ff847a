package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QTMarketing/lama-cms/pkg/blocks"
)

func TestRenderPreviewNilBlock(t *testing.T) {
	out := RenderPreview(nil)

	assert.Contains(t, out, "widget-status-empty")
	assert.Contains(t, out, "Click to configure this widget")
	assert.NotContains(t, out, "widget-preview-body")
}

func TestRenderPreviewUnconfigured(t *testing.T) {
	b := blocks.New(blocks.TypeText)
	out := RenderPreview(&b)

	assert.Contains(t, out, "Empty")
	assert.Contains(t, out, "Click to configure this widget")
}

func TestRenderPreviewConfiguredText(t *testing.T) {
	b := blocks.New(blocks.TypeText)
	b.Content["text"] = "Welcome to the store"
	out := RenderPreview(&b)

	assert.Contains(t, out, "widget-status-configured")
	assert.Contains(t, out, "Welcome to the store")
}

func TestRenderPreviewTruncatesLongText(t *testing.T) {
	b := blocks.New(blocks.TypeText)
	b.Content["text"] = strings.Repeat("a", 150)
	out := RenderPreview(&b)

	assert.Contains(t, out, strings.Repeat("a", 100)+"…")
	assert.NotContains(t, out, strings.Repeat("a", 101))
}

func TestRenderPreviewHeadingShowsLevel(t *testing.T) {
	b := blocks.New(blocks.TypeHeading)
	b.Content["text"] = "Shop"
	b.Content["level"] = float64(3)
	out := RenderPreview(&b)

	assert.Contains(t, out, "<strong>H3</strong>")
	assert.Contains(t, out, "Shop")
}

func TestRenderPreviewEscapesContent(t *testing.T) {
	b := blocks.New(blocks.TypeText)
	b.Content["text"] = `<img onerror="x">`
	out := RenderPreview(&b)

	assert.NotContains(t, out, `<img onerror`)
	assert.Contains(t, out, "&lt;img")
}

func TestRenderPreviewSpacer(t *testing.T) {
	b := blocks.New(blocks.TypeSpacer)
	out := RenderPreview(&b)

	require.Contains(t, out, "50px vertical space")
}

func TestRenderPreviewGalleryCount(t *testing.T) {
	b := blocks.New(blocks.TypeGallery)
	b.Content["images"] = []any{"a.png", "b.png", "c.png"}
	out := RenderPreview(&b)

	assert.Contains(t, out, "3 image(s)")
}

package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QTMarketing/lama-cms/pkg/blocks"
)

func TestSanitizeStripsScripts(t *testing.T) {
	out := Sanitize(`<p>hello</p><script>alert(1)</script>`)

	assert.Contains(t, out, "<p>hello</p>")
	assert.NotContains(t, out, "script")
}

func TestSanitizeKeepsWidgetPayload(t *testing.T) {
	b := blocks.New(blocks.TypeButton)
	d := NewDocument()
	InsertWidget(d, Caret(Pos{Block: 0, Offset: 0}), b)
	raw := Serialize(d)

	out := Sanitize(raw)
	assert.Contains(t, out, `data-type="widget"`)
	assert.Contains(t, out, "data-block=")

	again, err := Parse(out)
	require.NoError(t, err)
	_, n, ok := FindWidget(again, b.Id)
	require.True(t, ok)
	assert.NotNil(t, n.Block)
}

func TestSanitizeKeepsImageGeometry(t *testing.T) {
	out := Sanitize(`<img src="/a.png" data-width="200" data-align="center">`)

	assert.Contains(t, out, `data-width="200"`)
	assert.Contains(t, out, `data-align="center"`)
}

func TestIsDataURLImage(t *testing.T) {
	assert.True(t, IsDataURLImage("data:image/png;base64,iVBORw0KGgo="))
	assert.True(t, IsDataURLImage("data:image/jpeg;base64,/9j/4AAQ"))
	assert.False(t, IsDataURLImage("https://example.com/a.png"))
	assert.False(t, IsDataURLImage("data:text/html;base64,PGI+"))
}

func TestEncodeImageDataURL(t *testing.T) {
	url, err := EncodeImageDataURL("image/png", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, IsDataURLImage(url))

	_, err = EncodeImageDataURL("text/html", []byte("x"))
	assert.Error(t, err)

	_, err = EncodeImageDataURL("image/png", nil)
	assert.Error(t, err)
}

func TestEncodeImageDataURLNormalizesMime(t *testing.T) {
	url, err := EncodeImageDataURL("  IMAGE/WEBP ", []byte{9})
	require.NoError(t, err)
	assert.Contains(t, url, "data:image/webp;base64,")
}

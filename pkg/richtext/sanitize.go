package richtext

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var dataURLImage = regexp.MustCompile(`^data:image/(png|jpe?g|gif|webp);base64,`)

// sanitizePolicy allows the markup the serializer emits and nothing more.
// The data-* attributes carry the widget payload and image geometry, so
// they survive sanitization; everything else is stripped.
var sanitizePolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("data-type", "data-block", "class").OnElements("div", "span")
	p.AllowAttrs("data-width", "data-align", "style").OnElements("img")
	p.AllowAttrs("src", "frameborder", "style").OnElements("iframe")
	p.AllowDataURIImages()
	return p
}()

// Sanitize scrubs inbound post HTML before it is persisted. Editor-produced
// markup passes through unchanged.
func Sanitize(content string) string {
	return sanitizePolicy.Sanitize(content)
}

// IsDataURLImage reports whether the string is an inline base64 image data
// URL, the only image encoding the editor produces for uploads.
func IsDataURLImage(src string) bool {
	return dataURLImage.MatchString(src)
}

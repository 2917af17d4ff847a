package richtext

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Image bytes arriving through the drop, paste, and upload entry points are
// re-encoded as inline base64 data URLs; no image ever leaves the document.

var allowedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/gif":  {},
	"image/webp": {},
}

// EncodeImageDataURL converts raw image bytes into a data URL for embedding
// in an image node's src attribute. Non-image content is rejected so the
// default paste/drop handling can take over.
func EncodeImageDataURL(mimeType string, data []byte) (string, error) {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if _, ok := allowedImageTypes[mt]; !ok {
		return "", fmt.Errorf("unsupported image type %q", mimeType)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty image payload")
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

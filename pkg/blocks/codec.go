package blocks

import (
	"encoding/json"
	"strings"
)

// Encode serializes the block to its JSON wire form. This is the same
// encoding used for persistence and for embedding inside a rich-text
// widget node's data-block attribute.
func Encode(b Block) (string, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Decode parses a JSON-encoded block. Malformed or empty input yields nil
// rather than an error: a single bad embedded block must never make an
// entire document unopenable. Callers treat nil as "unconfigured".
func Decode(raw string) *Block {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !strings.HasPrefix(trimmed, "{") {
		return nil
	}
	var b Block
	if err := json.Unmarshal([]byte(trimmed), &b); err != nil {
		return nil
	}
	if b.Type == "" {
		return nil
	}
	return &b
}

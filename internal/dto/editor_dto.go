package dto

import (
	"github.com/QTMarketing/lama-cms/pkg/blocks"
	"github.com/QTMarketing/lama-cms/pkg/overlay"
)

type OpenEditorSessionRequest struct {
	Html string `json:"html"`
}

type OpenEditorSessionResponse struct {
	SessionId string `json:"session_id"`
	Html      string `json:"html"`
}

type PosPayload struct {
	Block  int `json:"block"`
	Offset int `json:"offset"`
}

type SelectionPayload struct {
	Anchor PosPayload `json:"anchor"`
	Head   PosPayload `json:"head"`
}

// GeometryPayload carries the on-screen rectangles the client measured for
// the current selection. The server never derives layout on its own.
type GeometryPayload struct {
	Cursor         overlay.Rect `json:"cursor"`
	SelectionStart overlay.Rect `json:"selection_start"`
	SelectionEnd   overlay.Rect `json:"selection_end"`
	Container      overlay.Rect `json:"container"`
	Viewport       overlay.Rect `json:"viewport"`
}

type UpdateSelectionRequest struct {
	SessionId string           `json:"-"`
	Selection SelectionPayload `json:"selection"`
	Geometry  GeometryPayload  `json:"geometry"`
}

type OverlayStateResponse struct {
	Kind     string        `json:"kind"`
	Position overlay.Point `json:"position"`
}

type InsertItemRequest struct {
	SessionId string `json:"-"`
	ItemId    string `json:"item_id" validate:"required"`
}

type SlashCommandRequest struct {
	SessionId string `json:"-"`
	CommandId string `json:"command_id" validate:"required"`
}

type BubbleCommandRequest struct {
	SessionId string `json:"-"`
	CommandId string `json:"command_id" validate:"required"`
	LinkURL   string `json:"link_url"`
}

type InsertTextRequest struct {
	SessionId string `json:"-"`
	Text      string `json:"text" validate:"required"`
}

type InsertWidgetRequest struct {
	SessionId string           `json:"-"`
	Type      blocks.BlockType `json:"type" validate:"required"`
}

type UpdateWidgetRequest struct {
	SessionId string       `json:"-"`
	BlockId   string       `json:"block_id" validate:"required"`
	Patch     blocks.Patch `json:"patch"`
}

type RemoveWidgetRequest struct {
	SessionId string `json:"-"`
	BlockId   string `json:"block_id" validate:"required"`
}

type WidgetResponse struct {
	Block   *blocks.Block `json:"block"`
	Preview string        `json:"preview"`
}

type UploadImageRequest struct {
	SessionId string `json:"-"`
	MimeType  string `json:"mime_type" validate:"required"`
	Data      string `json:"data" validate:"required"` // base64 payload
	Alt       string `json:"alt"`
	// FromModal marks uploads initiated through the image modal; they are
	// dropped when the modal was closed before the read completed.
	FromModal bool `json:"from_modal"`
}

type EditorDocumentResponse struct {
	SessionId string `json:"session_id"`
	Html      string `json:"html"`
}

package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/QTMarketing/lama-cms/pkg/blocks"
	"github.com/QTMarketing/lama-cms/pkg/builder"
)

type LayoutResponse struct {
	PageId    uuid.UUID         `json:"page_id"`
	Sections  []builder.Section `json:"sections"`
	Version   int               `json:"version"`
	UpdatedAt *time.Time        `json:"updated_at"`
}

type SaveLayoutRequest struct {
	PageId   uuid.UUID
	Sections []builder.Section `json:"sections" validate:"required"`
}

type AddSectionRequest struct {
	PageId uuid.UUID
	Type   string `json:"type" validate:"omitempty,oneof=default full-width boxed"`
}

type DeleteSectionRequest struct {
	PageId    uuid.UUID
	SectionId string `json:"section_id" validate:"required"`
}

type MoveSectionRequest struct {
	PageId    uuid.UUID
	SectionId string `json:"section_id" validate:"required"`
	Index     int    `json:"index"`
}

type AddColumnRequest struct {
	PageId    uuid.UUID
	SectionId string `json:"section_id" validate:"required"`
}

type DeleteColumnRequest struct {
	PageId    uuid.UUID
	SectionId string `json:"section_id" validate:"required"`
	ColumnId  string `json:"column_id" validate:"required"`
}

type AddBlockRequest struct {
	PageId    uuid.UUID
	SectionId string           `json:"section_id" validate:"required"`
	ColumnId  string           `json:"column_id" validate:"required"`
	Type      blocks.BlockType `json:"type" validate:"required"`
}

type UpdateBlockRequest struct {
	PageId  uuid.UUID
	BlockId string       `json:"block_id" validate:"required"`
	Patch   blocks.Patch `json:"patch"`
}

type DeleteBlockRequest struct {
	PageId  uuid.UUID
	BlockId string `json:"block_id" validate:"required"`
}

type MoveBlockRequest struct {
	PageId          uuid.UUID
	BlockId         string `json:"block_id" validate:"required"`
	TargetSectionId string `json:"target_section_id" validate:"required"`
	TargetColumnId  string `json:"target_column_id" validate:"required"`
	Index           int    `json:"index"`
}

type SelectBlockRequest struct {
	PageId  uuid.UUID
	BlockId string `json:"block_id"` // empty clears the selection
}

type SetBuilderModeRequest struct {
	PageId uuid.UUID
	Mode   string `json:"mode" validate:"required,oneof=edit preview"`
}

type BuilderStateResponse struct {
	PageId          uuid.UUID         `json:"page_id"`
	Mode            string            `json:"mode"`
	SelectedBlockId string            `json:"selected_block_id,omitempty"`
	Sections        []builder.Section `json:"sections"`
	Version         int               `json:"version"`
}

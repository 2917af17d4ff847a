package builder

import (
	"time"

	"github.com/google/uuid"

	"github.com/QTMarketing/lama-cms/pkg/blocks"
)

// SectionType controls the outer layout wrapper of a section.
type SectionType string

const (
	SectionDefault   SectionType = "default"
	SectionFullWidth SectionType = "full-width"
	SectionBoxed     SectionType = "boxed"
)

// SectionStyles are the visual properties of a section wrapper.
type SectionStyles struct {
	BackgroundColor    string  `json:"backgroundColor,omitempty"`
	PaddingTop         float64 `json:"paddingTop,omitempty"`
	PaddingBottom      float64 `json:"paddingBottom,omitempty"`
	BackgroundImage    string  `json:"backgroundImage,omitempty"`
	BackgroundSize     string  `json:"backgroundSize,omitempty"`
	BackgroundPosition string  `json:"backgroundPosition,omitempty"`
	BackgroundRepeat   string  `json:"backgroundRepeat,omitempty"`
}

// Column holds an ordered list of blocks. Sibling widths within a section
// always sum to 100.
type Column struct {
	Id     string         `json:"id"`
	Width  float64        `json:"width"`
	Blocks []blocks.Block `json:"blocks"`
}

// Section is one horizontal band of a page. It owns its columns
// exclusively.
type Section struct {
	Id      string        `json:"id"`
	Type    SectionType   `json:"type"`
	Columns []Column      `json:"columns"`
	Styles  SectionStyles `json:"styles"`
}

// PageData is the persisted page-builder layout for one page, looked up by
// PageId.
type PageData struct {
	Id        string    `json:"id"`
	PageId    string    `json:"pageId"`
	Sections  []Section `json:"sections"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewColumn returns an empty column of the given width.
func NewColumn(width float64) Column {
	return Column{
		Id:     uuid.New().String(),
		Width:  width,
		Blocks: []blocks.Block{},
	}
}

// NewSection returns a section with exactly one full-width column.
func NewSection() Section {
	return Section{
		Id:      uuid.New().String(),
		Type:    SectionDefault,
		Columns: []Column{NewColumn(100)},
		Styles:  SectionStyles{PaddingTop: 40, PaddingBottom: 40},
	}
}

// NewPageData returns an empty layout for the given page.
func NewPageData(pageId string) PageData {
	now := time.Now()
	return PageData{
		Id:        uuid.New().String(),
		PageId:    pageId,
		Sections:  []Section{},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FindBlock locates a block anywhere in the tree by id.
func FindBlock(sections []Section, blockId string) (*blocks.Block, bool) {
	for si := range sections {
		for ci := range sections[si].Columns {
			for bi := range sections[si].Columns[ci].Blocks {
				if sections[si].Columns[ci].Blocks[bi].Id == blockId {
					return &sections[si].Columns[ci].Blocks[bi], true
				}
			}
		}
	}
	return nil, false
}

// LocateBlock returns the section and column ids holding a block.
func LocateBlock(sections []Section, blockId string) (sectionId, columnId string, ok bool) {
	for _, s := range sections {
		for _, c := range s.Columns {
			for _, b := range c.Blocks {
				if b.Id == blockId {
					return s.Id, c.Id, true
				}
			}
		}
	}
	return "", "", false
}

// SectionContainsBlock reports whether the section with the given id holds
// the block. Used to clear the selection when its section is deleted.
func SectionContainsBlock(sections []Section, sectionId, blockId string) bool {
	for _, s := range sections {
		if s.Id != sectionId {
			continue
		}
		for _, c := range s.Columns {
			for _, b := range c.Blocks {
				if b.Id == blockId {
					return true
				}
			}
		}
	}
	return false
}

package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/QTMarketing/lama-cms/pkg/builder"
)

// PageBuilderRecord is the persisted section tree for one page, looked up
// by PageId. The editing core treats Sections as its aggregate; the record
// wrapper only adds identity and versioning.
type PageBuilderRecord struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PageId    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Sections  []builder.Section
	Version   int
	CreatedAt time.Time
	UpdatedAt *time.Time
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PageBuilderRecord struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PageId    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Sections  datatypes.JSON `gorm:"type:jsonb"`
	Version   int            `gorm:"not null;default:1"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (PageBuilderRecord) TableName() string {
	return "page_builder_records"
}

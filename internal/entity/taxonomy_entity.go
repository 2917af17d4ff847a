package entity

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type Tag struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Slug      string
	CreatedAt time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdminUser struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

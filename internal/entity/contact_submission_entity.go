package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContactSubmission struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

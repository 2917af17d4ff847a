package model

import (
	"time"

	"github.com/google/uuid"
)

type ContactSubmission struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(50)"`
	Subject   string    `gorm:"type:varchar(255)"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

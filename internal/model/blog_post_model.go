package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogPost struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Slug            string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Content         string    `gorm:"type:text"`
	Excerpt         string    `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(20);not null;default:draft;index"`
	MetaTitle       string    `gorm:"type:varchar(255)"`
	MetaDescription string    `gorm:"type:text"`
	MetaKeywords    string    `gorm:"type:text"`
	FeaturedImage   string    `gorm:"type:text"`
	CategoryId      *uuid.UUID `gorm:"type:uuid;index"`
	Tags            []Tag      `gorm:"many2many:blog_post_tags;"`
	PublishedAt     *time.Time
	ScheduledAt     *time.Time
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

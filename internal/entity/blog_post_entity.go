package entity

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus enumerates the publishing states of a blog post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusTrash     PostStatus = "trash"
)

func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusScheduled, PostStatusTrash:
		return true
	}
	return false
}

type BlogPost struct {
	Id      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title   string
	Slug    string
	Content string // serialized rich-text document HTML
	Excerpt string
	Status  PostStatus

	// SEO metadata
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	FeaturedImage   string // inline base64 data URL

	CategoryId  *uuid.UUID `gorm:"type:uuid;index"`
	Tags        []Tag
	PublishedAt *time.Time
	ScheduledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByStatus filters blog posts by publishing status
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByCategoryID filters blog posts by category
type ByCategoryID struct {
	CategoryID uuid.UUID
}

func (s ByCategoryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id = ?", s.CategoryID)
}

// PostSearchQuery filters posts by title or content (case-insensitive)
type PostSearchQuery struct {
	Query string
}

func (s PostSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
}

// WithTags preloads the tag association
type WithTags struct{}

func (s WithTags) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Tags")
}

// ByPageID filters page-builder records by their owning page
type ByPageID struct {
	PageID uuid.UUID
}

func (s ByPageID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("page_id = ?", s.PageID)
}

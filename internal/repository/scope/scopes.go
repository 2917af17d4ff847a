package scope

import "gorm.io/gorm"

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

func OrderByPublishedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("published_at DESC NULLS LAST")
}

// WithTrashed includes soft deleted rows in the result.
func WithTrashed(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

// OnlyTrashed restricts the result to soft deleted rows.
func OnlyTrashed(db *gorm.DB) *gorm.DB {
	return db.Unscoped().Where("deleted_at IS NOT NULL")
}

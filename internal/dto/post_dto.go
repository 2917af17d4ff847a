package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Title           string      `json:"title" validate:"required"`
	Content         string      `json:"content"`
	Excerpt         string      `json:"excerpt"`
	Status          string      `json:"status" validate:"omitempty,oneof=draft published scheduled"`
	CategoryId      *uuid.UUID  `json:"category_id"`
	TagIds          []uuid.UUID `json:"tag_ids"`
	MetaTitle       string      `json:"meta_title"`
	MetaDescription string      `json:"meta_description"`
	MetaKeywords    string      `json:"meta_keywords"`
	FeaturedImage   string      `json:"featured_image"`
	ScheduledAt     *time.Time  `json:"scheduled_at"`
}

type CreatePostResponse struct {
	Id   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

type UpdatePostRequest struct {
	Id              uuid.UUID
	Title           string      `json:"title" validate:"required"`
	Content         string      `json:"content"`
	Excerpt         string      `json:"excerpt"`
	Status          string      `json:"status" validate:"omitempty,oneof=draft published scheduled"`
	CategoryId      *uuid.UUID  `json:"category_id"`
	TagIds          []uuid.UUID `json:"tag_ids"`
	MetaTitle       string      `json:"meta_title"`
	MetaDescription string      `json:"meta_description"`
	MetaKeywords    string      `json:"meta_keywords"`
	FeaturedImage   string      `json:"featured_image"`
	ScheduledAt     *time.Time  `json:"scheduled_at"`
}

type UpdatePostResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowPostResponse struct {
	Id              uuid.UUID        `json:"id"`
	Title           string           `json:"title"`
	Slug            string           `json:"slug"`
	Content         string           `json:"content"`
	Excerpt         string           `json:"excerpt"`
	Status          string           `json:"status"`
	Category        *CategoryResponse `json:"category,omitempty"`
	Tags            []TagResponse    `json:"tags"`
	MetaTitle       string           `json:"meta_title"`
	MetaDescription string           `json:"meta_description"`
	MetaKeywords    string           `json:"meta_keywords"`
	FeaturedImage   string           `json:"featured_image"`
	PublishedAt     *time.Time       `json:"published_at"`
	ScheduledAt     *time.Time       `json:"scheduled_at"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       *time.Time       `json:"updated_at"`
}

type PostListItem struct {
	Id            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Status        string     `json:"status"`
	CategoryId    *uuid.UUID `json:"category_id"`
	FeaturedImage string     `json:"featured_image"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

type ListPostsRequest struct {
	Status     string     `query:"status" validate:"omitempty,oneof=draft published scheduled trash"`
	CategoryId *uuid.UUID `query:"category_id"`
	Search     string     `query:"q"`
	Page       int        `query:"page"`
	PerPage    int        `query:"per_page"`
}

type ListPostsResponse struct {
	Posts   []PostListItem `json:"posts"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

package mapper

import (
	"time"

	"github.com/QTMarketing/lama-cms/internal/entity"
	"github.com/QTMarketing/lama-cms/internal/model"
)

type PostMapper struct {
	tags *TaxonomyMapper
}

func NewPostMapper() *PostMapper {
	return &PostMapper{tags: NewTaxonomyMapper()}
}

func (m *PostMapper) ToEntity(p *model.BlogPost) *entity.BlogPost {
	if p == nil {
		return nil
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	tags := make([]entity.Tag, 0, len(p.Tags))
	for i := range p.Tags {
		tags = append(tags, *m.tags.TagToEntity(&p.Tags[i]))
	}

	return &entity.BlogPost{
		Id:              p.Id,
		Title:           p.Title,
		Slug:            p.Slug,
		Content:         p.Content,
		Excerpt:         p.Excerpt,
		Status:          entity.PostStatus(p.Status),
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		MetaKeywords:    p.MetaKeywords,
		FeaturedImage:   p.FeaturedImage,
		CategoryId:      p.CategoryId,
		Tags:            tags,
		PublishedAt:     p.PublishedAt,
		ScheduledAt:     p.ScheduledAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       updatedAt,
		DeletedAt:       deletedAt,
	}
}

func (m *PostMapper) ToModel(p *entity.BlogPost) *model.BlogPost {
	if p == nil {
		return nil
	}

	tags := make([]model.Tag, 0, len(p.Tags))
	for i := range p.Tags {
		tags = append(tags, *m.tags.TagToModel(&p.Tags[i]))
	}

	out := &model.BlogPost{
		Id:              p.Id,
		Title:           p.Title,
		Slug:            p.Slug,
		Content:         p.Content,
		Excerpt:         p.Excerpt,
		Status:          string(p.Status),
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		MetaKeywords:    p.MetaKeywords,
		FeaturedImage:   p.FeaturedImage,
		CategoryId:      p.CategoryId,
		Tags:            tags,
		PublishedAt:     p.PublishedAt,
		ScheduledAt:     p.ScheduledAt,
		CreatedAt:       p.CreatedAt,
	}
	if p.UpdatedAt != nil {
		out.UpdatedAt = *p.UpdatedAt
	}
	return out
}

func (m *PostMapper) ToEntities(models []*model.BlogPost) []*entity.BlogPost {
	out := make([]*entity.BlogPost, 0, len(models))
	for _, p := range models {
		out = append(out, m.ToEntity(p))
	}
	return out
}

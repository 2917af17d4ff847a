package mapper

import (
	"time"

	"github.com/QTMarketing/lama-cms/internal/entity"
	"github.com/QTMarketing/lama-cms/internal/model"
)

type TaxonomyMapper struct{}

func NewTaxonomyMapper() *TaxonomyMapper {
	return &TaxonomyMapper{}
}

func (m *TaxonomyMapper) CategoryToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}
	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}
	return &entity.Category{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *TaxonomyMapper) CategoryToModel(c *entity.Category) *model.Category {
	if c == nil {
		return nil
	}
	out := &model.Category{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
	if c.UpdatedAt != nil {
		out.UpdatedAt = *c.UpdatedAt
	}
	return out
}

func (m *TaxonomyMapper) CategoriesToEntities(models []*model.Category) []*entity.Category {
	out := make([]*entity.Category, 0, len(models))
	for _, c := range models {
		out = append(out, m.CategoryToEntity(c))
	}
	return out
}

func (m *TaxonomyMapper) TagToEntity(t *model.Tag) *entity.Tag {
	if t == nil {
		return nil
	}
	return &entity.Tag{
		Id:        t.Id,
		Name:      t.Name,
		Slug:      t.Slug,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TaxonomyMapper) TagToModel(t *entity.Tag) *model.Tag {
	if t == nil {
		return nil
	}
	return &model.Tag{
		Id:        t.Id,
		Name:      t.Name,
		Slug:      t.Slug,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TaxonomyMapper) TagsToEntities(models []*model.Tag) []*entity.Tag {
	out := make([]*entity.Tag, 0, len(models))
	for _, t := range models {
		out = append(out, m.TagToEntity(t))
	}
	return out
}

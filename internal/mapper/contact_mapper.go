package mapper

import (
	"github.com/QTMarketing/lama-cms/internal/entity"
	"github.com/QTMarketing/lama-cms/internal/model"
)

type ContactMapper struct{}

func NewContactMapper() *ContactMapper {
	return &ContactMapper{}
}

func (m *ContactMapper) ToEntity(c *model.ContactSubmission) *entity.ContactSubmission {
	if c == nil {
		return nil
	}
	return &entity.ContactSubmission{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ContactMapper) ToModel(c *entity.ContactSubmission) *model.ContactSubmission {
	if c == nil {
		return nil
	}
	return &model.ContactSubmission{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ContactMapper) ToEntities(models []*model.ContactSubmission) []*entity.ContactSubmission {
	out := make([]*entity.ContactSubmission, 0, len(models))
	for _, c := range models {
		out = append(out, m.ToEntity(c))
	}
	return out
}

package mapper

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/QTMarketing/lama-cms/internal/entity"
	"github.com/QTMarketing/lama-cms/internal/model"
	"github.com/QTMarketing/lama-cms/pkg/builder"
)

type PageBuilderMapper struct{}

func NewPageBuilderMapper() *PageBuilderMapper {
	return &PageBuilderMapper{}
}

func (m *PageBuilderMapper) ToEntity(r *model.PageBuilderRecord) *entity.PageBuilderRecord {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	// Malformed persisted sections degrade to an empty layout rather than
	// failing the load.
	var sections []builder.Section
	if len(r.Sections) > 0 {
		if err := json.Unmarshal(r.Sections, &sections); err != nil {
			sections = nil
		}
	}
	if sections == nil {
		sections = []builder.Section{}
	}

	return &entity.PageBuilderRecord{
		Id:        r.Id,
		PageId:    r.PageId,
		Sections:  sections,
		Version:   r.Version,
		CreatedAt: r.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *PageBuilderMapper) ToModel(r *entity.PageBuilderRecord) *model.PageBuilderRecord {
	if r == nil {
		return nil
	}

	raw, err := json.Marshal(r.Sections)
	if err != nil {
		raw = []byte("[]")
	}

	out := &model.PageBuilderRecord{
		Id:        r.Id,
		PageId:    r.PageId,
		Sections:  datatypes.JSON(raw),
		Version:   r.Version,
		CreatedAt: r.CreatedAt,
	}
	if r.UpdatedAt != nil {
		out.UpdatedAt = *r.UpdatedAt
	}
	return out
}

func (m *PageBuilderMapper) ToEntities(models []*model.PageBuilderRecord) []*entity.PageBuilderRecord {
	out := make([]*entity.PageBuilderRecord, 0, len(models))
	for _, r := range models {
		out = append(out, m.ToEntity(r))
	}
	return out
}

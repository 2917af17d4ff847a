package implementation

import (
	"context"
	"errors"

	"github.com/QTMarketing/lama-cms/internal/entity"
	"github.com/QTMarketing/lama-cms/internal/mapper"
	"github.com/QTMarketing/lama-cms/internal/model"
	"github.com/QTMarketing/lama-cms/internal/repository/contract"
	"github.com/QTMarketing/lama-cms/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PageBuilderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PageBuilderMapper
}

func NewPageBuilderRepository(db *gorm.DB) contract.PageBuilderRepository {
	return &PageBuilderRepositoryImpl{
		db:     db,
		mapper: mapper.NewPageBuilderMapper(),
	}
}

func (r *PageBuilderRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PageBuilderRepositoryImpl) Create(ctx context.Context, record *entity.PageBuilderRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *PageBuilderRepositoryImpl) Update(ctx context.Context, record *entity.PageBuilderRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *PageBuilderRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PageBuilderRecord{}, id).Error
}

func (r *PageBuilderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PageBuilderRecord, error) {
	var m model.PageBuilderRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PageBuilderRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PageBuilderRecord, error) {
	var models []*model.PageBuilderRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

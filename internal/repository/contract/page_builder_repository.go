package contract

import (
	"context"

	"github.com/QTMarketing/lama-cms/internal/entity"
	"github.com/QTMarketing/lama-cms/internal/repository/specification"

	"github.com/google/uuid"
)

type PageBuilderRepository interface {
	Create(ctx context.Context, record *entity.PageBuilderRecord) error
	Update(ctx context.Context, record *entity.PageBuilderRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PageBuilderRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PageBuilderRecord, error)
}

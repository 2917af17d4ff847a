package contract

import (
	"context"

	"github.com/QTMarketing/lama-cms/internal/entity"
	"github.com/QTMarketing/lama-cms/internal/repository/specification"

	"github.com/google/uuid"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error // soft delete (trash)
	DeleteUnscoped(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BlogPost, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BlogPost, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

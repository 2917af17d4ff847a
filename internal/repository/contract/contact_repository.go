package contract

import (
	"context"

	"github.com/QTMarketing/lama-cms/internal/entity"
	"github.com/QTMarketing/lama-cms/internal/repository/specification"

	"github.com/google/uuid"
)

type ContactRepository interface {
	Create(ctx context.Context, submission *entity.ContactSubmission) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContactSubmission, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactSubmission, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

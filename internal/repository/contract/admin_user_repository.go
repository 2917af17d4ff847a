package contract

import (
	"context"

	"github.com/QTMarketing/lama-cms/internal/entity"
	"github.com/QTMarketing/lama-cms/internal/repository/specification"
)

type AdminUserRepository interface {
	Create(ctx context.Context, user *entity.AdminUser) error
	Update(ctx context.Context, user *entity.AdminUser) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminUser, error)
}

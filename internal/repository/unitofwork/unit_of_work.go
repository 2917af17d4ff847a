package unitofwork

import (
	"context"

	"github.com/QTMarketing/lama-cms/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PostRepository() contract.PostRepository
	CategoryRepository() contract.CategoryRepository
	TagRepository() contract.TagRepository
	PageBuilderRepository() contract.PageBuilderRepository
	ContactRepository() contract.ContactRepository
	AdminUserRepository() contract.AdminUserRepository
}

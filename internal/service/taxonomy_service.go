package service

import (
	"context"
	"time"

	"github.com/QTMarketing/lama-cms/internal/dto"
	"github.com/QTMarketing/lama-cms/internal/entity"
	"github.com/QTMarketing/lama-cms/internal/pkg/serverutils"
	"github.com/QTMarketing/lama-cms/internal/repository/specification"
	"github.com/QTMarketing/lama-cms/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITaxonomyService interface {
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]dto.CategoryResponse, error)
	CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
	ListTags(ctx context.Context) ([]dto.TagResponse, error)
}

type taxonomyService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTaxonomyService(uowFactory unitofwork.RepositoryFactory) ITaxonomyService {
	return &taxonomyService{
		uowFactory: uowFactory,
	}
}

func (s *taxonomyService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slug, err := uniqueSlug(ctx, Slugify(req.Name), func(ctx context.Context, slug string) (bool, error) {
		existing, err := uow.CategoryRepository().FindOne(ctx, specification.BySlug{Slug: slug})
		return existing != nil, err
	})
	if err != nil {
		return nil, err
	}

	category := entity.Category{
		Id:          uuid.New(),
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := uow.CategoryRepository().Create(ctx, &category); err != nil {
		return nil, err
	}

	return categoryResponse(&category), nil
}

func (s *taxonomyService) UpdateCategory(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	now := time.Now()
	category.Name = req.Name
	category.Description = req.Description
	category.UpdatedAt = &now

	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return nil, err
	}
	return categoryResponse(category), nil
}

func (s *taxonomyService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	inUse, err := uow.PostRepository().Count(ctx, specification.ByCategoryID{CategoryID: id})
	if err != nil {
		return err
	}
	if inUse > 0 {
		return serverutils.NewApiError(fiber.StatusConflict, "category is still assigned to posts")
	}

	return uow.CategoryRepository().Delete(ctx, id)
}

func (s *taxonomyService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	categories, err := uow.CategoryRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *categoryResponse(c))
	}
	return out, nil
}

func (s *taxonomyService) CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slug := Slugify(req.Name)
	existing, err := uow.TagRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// Tags are deduplicated by slug.
		return &dto.TagResponse{Id: existing.Id, Name: existing.Name, Slug: existing.Slug}, nil
	}

	tag := entity.Tag{
		Id:        uuid.New(),
		Name:      req.Name,
		Slug:      slug,
		CreatedAt: time.Now(),
	}
	if err := uow.TagRepository().Create(ctx, &tag); err != nil {
		return nil, err
	}
	return &dto.TagResponse{Id: tag.Id, Name: tag.Name, Slug: tag.Slug}, nil
}

func (s *taxonomyService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.TagRepository().Delete(ctx, id)
}

func (s *taxonomyService) ListTags(ctx context.Context) ([]dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tags, err := uow.TagRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}
	out := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, dto.TagResponse{Id: t.Id, Name: t.Name, Slug: t.Slug})
	}
	return out, nil
}

func categoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

package service

import (
	"context"
	"time"

	"github.com/QTMarketing/lama-cms/internal/dto"
	"github.com/QTMarketing/lama-cms/internal/entity"
	"github.com/QTMarketing/lama-cms/internal/pkg/logger"
	"github.com/QTMarketing/lama-cms/internal/pkg/serverutils"
	"github.com/QTMarketing/lama-cms/internal/repository/scope"
	"github.com/QTMarketing/lama-cms/internal/repository/specification"
	"github.com/QTMarketing/lama-cms/internal/repository/unitofwork"
	"github.com/QTMarketing/lama-cms/pkg/events"
	"github.com/QTMarketing/lama-cms/pkg/richtext"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPostService interface {
	Create(ctx context.Context, req *dto.CreatePostRequest) (*dto.CreatePostResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowPostResponse, error)
	ShowBySlug(ctx context.Context, slug string) (*dto.ShowPostResponse, error)
	Update(ctx context.Context, req *dto.UpdatePostRequest) (*dto.UpdatePostResponse, error)
	List(ctx context.Context, req *dto.ListPostsRequest) (*dto.ListPostsResponse, error)
	Trash(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	DeletePermanent(ctx context.Context, id uuid.UUID) error
	PublishDue(ctx context.Context) (int, error)
}

type postService struct {
	uowFactory unitofwork.RepositoryFactory
	bus        *events.Bus
	logger     logger.ILogger
}

func NewPostService(uowFactory unitofwork.RepositoryFactory, bus *events.Bus, log logger.ILogger) IPostService {
	return &postService{
		uowFactory: uowFactory,
		bus:        bus,
		logger:     log,
	}
}

func (s *postService) Create(ctx context.Context, req *dto.CreatePostRequest) (*dto.CreatePostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status := entity.PostStatus(req.Status)
	if req.Status == "" {
		status = entity.PostStatusDraft
	}
	if !status.Valid() || status == entity.PostStatusTrash {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "invalid post status")
	}

	slug, err := uniqueSlug(ctx, Slugify(req.Title), func(ctx context.Context, slug string) (bool, error) {
		existing, err := uow.PostRepository().FindOne(ctx, specification.BySlug{Slug: slug})
		return existing != nil, err
	})
	if err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(ctx, uow, req.TagIds)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post := entity.BlogPost{
		Id:              uuid.New(),
		Title:           req.Title,
		Slug:            slug,
		Content:         richtext.Sanitize(req.Content),
		Excerpt:         req.Excerpt,
		Status:          status,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		FeaturedImage:   req.FeaturedImage,
		CategoryId:      req.CategoryId,
		Tags:            tags,
		ScheduledAt:     req.ScheduledAt,
		CreatedAt:       now,
	}
	if status == entity.PostStatusPublished {
		post.PublishedAt = &now
	}
	if status == entity.PostStatusScheduled && req.ScheduledAt == nil {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "scheduled posts need a schedule time")
	}

	if err := uow.PostRepository().Create(ctx, &post); err != nil {
		return nil, err
	}

	s.publishChanged(post.Id)

	return &dto.CreatePostResponse{
		Id:   post.Id,
		Slug: post.Slug,
	}, nil
}

func (s *postService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	post, err := uow.PostRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.WithTags{},
	)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	return s.toShowResponse(ctx, uow, post)
}

func (s *postService) ShowBySlug(ctx context.Context, slug string) (*dto.ShowPostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	post, err := uow.PostRepository().FindOne(ctx,
		specification.BySlug{Slug: slug},
		specification.ByStatus{Status: string(entity.PostStatusPublished)},
		specification.WithTags{},
	)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	return s.toShowResponse(ctx, uow, post)
}

func (s *postService) Update(ctx context.Context, req *dto.UpdatePostRequest) (*dto.UpdatePostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.PostRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.WithTags{},
	)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}

	status := entity.PostStatus(req.Status)
	if req.Status == "" {
		status = post.Status
	}
	if !status.Valid() || status == entity.PostStatusTrash {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "invalid post status")
	}

	if req.Title != post.Title {
		slug, err := uniqueSlug(ctx, Slugify(req.Title), func(ctx context.Context, slug string) (bool, error) {
			existing, err := uow.PostRepository().FindOne(ctx, specification.BySlug{Slug: slug})
			if existing != nil && existing.Id == post.Id {
				return false, err
			}
			return existing != nil, err
		})
		if err != nil {
			return nil, err
		}
		post.Slug = slug
	}

	tags, err := s.resolveTags(ctx, uow, req.TagIds)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if status == entity.PostStatusPublished && post.Status != entity.PostStatusPublished {
		post.PublishedAt = &now
	}

	post.Title = req.Title
	post.Content = richtext.Sanitize(req.Content)
	post.Excerpt = req.Excerpt
	post.Status = status
	post.MetaTitle = req.MetaTitle
	post.MetaDescription = req.MetaDescription
	post.MetaKeywords = req.MetaKeywords
	post.FeaturedImage = req.FeaturedImage
	post.CategoryId = req.CategoryId
	post.Tags = tags
	post.ScheduledAt = req.ScheduledAt
	post.UpdatedAt = &now

	if err := uow.PostRepository().Update(ctx, post); err != nil {
		return nil, err
	}

	s.publishChanged(post.Id)

	return &dto.UpdatePostResponse{Id: post.Id}, nil
}

func (s *postService) List(ctx context.Context, req *dto.ListPostsRequest) (*dto.ListPostsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var filters []specification.Specification
	if req.Status == string(entity.PostStatusTrash) {
		filters = append(filters, specification.WithScope{Scope: scope.OnlyTrashed})
	} else if req.Status != "" {
		filters = append(filters, specification.ByStatus{Status: req.Status})
	}
	if req.CategoryId != nil {
		filters = append(filters, specification.ByCategoryID{CategoryID: *req.CategoryId})
	}
	if req.Search != "" {
		filters = append(filters, specification.PostSearchQuery{Query: req.Search})
	}

	total, err := uow.PostRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(filters,
		specification.WithScope{Scope: scope.OrderByCreatedDesc},
		specification.Pagination{Limit: perPage, Offset: (page - 1) * perPage},
	)
	posts, err := uow.PostRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PostListItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, dto.PostListItem{
			Id:            p.Id,
			Title:         p.Title,
			Slug:          p.Slug,
			Excerpt:       p.Excerpt,
			Status:        string(p.Status),
			CategoryId:    p.CategoryId,
			FeaturedImage: p.FeaturedImage,
			PublishedAt:   p.PublishedAt,
			CreatedAt:     p.CreatedAt,
		})
	}

	return &dto.ListPostsResponse{
		Posts:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

func (s *postService) Trash(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	post, err := uow.PostRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if post == nil {
		return serverutils.NewApiError(fiber.StatusNotFound, "post not found")
	}
	if err := uow.PostRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.publishChanged(id)
	return nil
}

func (s *postService) Restore(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	post, err := uow.PostRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.WithScope{Scope: scope.OnlyTrashed},
	)
	if err != nil {
		return err
	}
	if post == nil {
		return serverutils.NewApiError(fiber.StatusNotFound, "post not found in trash")
	}

	now := time.Now()
	post.Status = entity.PostStatusDraft
	post.DeletedAt = nil
	post.UpdatedAt = &now
	if err := uow.PostRepository().Update(ctx, post); err != nil {
		return err
	}
	s.publishChanged(id)
	return nil
}

func (s *postService) DeletePermanent(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PostRepository().DeleteUnscoped(ctx, id); err != nil {
		return err
	}
	s.publishChanged(id)
	return nil
}

// PublishDue flips scheduled posts whose time has arrived to published.
// Called from the scheduler loop.
func (s *postService) PublishDue(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	posts, err := uow.PostRepository().FindAll(ctx,
		specification.ByStatus{Status: string(entity.PostStatusScheduled)},
	)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	published := 0
	for _, p := range posts {
		if p.ScheduledAt == nil || p.ScheduledAt.After(now) {
			continue
		}
		p.Status = entity.PostStatusPublished
		p.PublishedAt = &now
		p.UpdatedAt = &now
		if err := uow.PostRepository().Update(ctx, p); err != nil {
			s.logger.Error("post", "failed to publish scheduled post", map[string]interface{}{
				"post_id": p.Id,
				"error":   err.Error(),
			})
			continue
		}
		s.publishChanged(p.Id)
		published++
	}
	return published, nil
}

func (s *postService) resolveTags(ctx context.Context, uow unitofwork.UnitOfWork, ids []uuid.UUID) ([]entity.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := uow.TagRepository().FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	tags := make([]entity.Tag, 0, len(found))
	for _, t := range found {
		tags = append(tags, *t)
	}
	return tags, nil
}

func (s *postService) toShowResponse(ctx context.Context, uow unitofwork.UnitOfWork, post *entity.BlogPost) (*dto.ShowPostResponse, error) {
	res := dto.ShowPostResponse{
		Id:              post.Id,
		Title:           post.Title,
		Slug:            post.Slug,
		Content:         post.Content,
		Excerpt:         post.Excerpt,
		Status:          string(post.Status),
		MetaTitle:       post.MetaTitle,
		MetaDescription: post.MetaDescription,
		MetaKeywords:    post.MetaKeywords,
		FeaturedImage:   post.FeaturedImage,
		PublishedAt:     post.PublishedAt,
		ScheduledAt:     post.ScheduledAt,
		CreatedAt:       post.CreatedAt,
		UpdatedAt:       post.UpdatedAt,
	}

	res.Tags = make([]dto.TagResponse, 0, len(post.Tags))
	for _, t := range post.Tags {
		res.Tags = append(res.Tags, dto.TagResponse{Id: t.Id, Name: t.Name, Slug: t.Slug})
	}

	if post.CategoryId != nil {
		category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: *post.CategoryId})
		if err != nil {
			return nil, err
		}
		if category != nil {
			res.Category = &dto.CategoryResponse{
				Id:          category.Id,
				Name:        category.Name,
				Slug:        category.Slug,
				Description: category.Description,
				CreatedAt:   category.CreatedAt,
			}
		}
	}

	return &res, nil
}

func (s *postService) publishChanged(id uuid.UUID) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(events.TopicContentChanged, events.ContentChanged("post", id.String())); err != nil {
		s.logger.Warn("post", "failed to publish content change", map[string]interface{}{
			"post_id": id,
			"error":   err.Error(),
		})
	}
}

package controller

import (
	"github.com/QTMarketing/lama-cms/internal/dto"
	"github.com/QTMarketing/lama-cms/internal/pkg/serverutils"
	"github.com/QTMarketing/lama-cms/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITaxonomyController interface {
	RegisterRoutes(r fiber.Router)
}

type taxonomyController struct {
	taxonomyService service.ITaxonomyService
}

func NewTaxonomyController(taxonomyService service.ITaxonomyService) ITaxonomyController {
	return &taxonomyController{
		taxonomyService: taxonomyService,
	}
}

func (c *taxonomyController) RegisterRoutes(r fiber.Router) {
	public := r.Group("/taxonomy/v1")
	public.Get("categories", c.ListCategories)
	public.Get("tags", c.ListTags)

	h := r.Group("/admin/taxonomy/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("categories", c.CreateCategory)
	h.Put("categories/:id", c.UpdateCategory)
	h.Delete("categories/:id", c.DeleteCategory)
	h.Post("tags", c.CreateTag)
	h.Delete("tags/:id", c.DeleteTag)
}

func (c *taxonomyController) CreateCategory(ctx *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.taxonomyService.CreateCategory(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create category", res))
}

func (c *taxonomyController) UpdateCategory(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "invalid category id")
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.taxonomyService.UpdateCategory(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewApiError(fiber.StatusNotFound, "category not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update category", res))
}

func (c *taxonomyController) DeleteCategory(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "invalid category id")
	}

	if err := c.taxonomyService.DeleteCategory(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete category", nil))
}

func (c *taxonomyController) ListCategories(ctx *fiber.Ctx) error {
	res, err := c.taxonomyService.ListCategories(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list categories", res))
}

func (c *taxonomyController) CreateTag(ctx *fiber.Ctx) error {
	var req dto.CreateTagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.taxonomyService.CreateTag(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create tag", res))
}

func (c *taxonomyController) DeleteTag(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "invalid tag id")
	}

	if err := c.taxonomyService.DeleteTag(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete tag", nil))
}

func (c *taxonomyController) ListTags(ctx *fiber.Ctx) error {
	res, err := c.taxonomyService.ListTags(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list tags", res))
}

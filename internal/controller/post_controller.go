package controller

import (
	"github.com/QTMarketing/lama-cms/internal/dto"
	"github.com/QTMarketing/lama-cms/internal/pkg/serverutils"
	"github.com/QTMarketing/lama-cms/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPostController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ShowBySlug(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Trash(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	DeletePermanent(ctx *fiber.Ctx) error
}

type postController struct {
	postService service.IPostService
}

func NewPostController(postService service.IPostService) IPostController {
	return &postController{
		postService: postService,
	}
}

func (c *postController) RegisterRoutes(r fiber.Router) {
	public := r.Group("/post/v1")
	public.Get("published/:slug", c.ShowBySlug)

	h := r.Group("/admin/post/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Trash)
	h.Put(":id/restore", c.Restore)
	h.Delete(":id/permanent", c.DeletePermanent)
}

func (c *postController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.postService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create post", res))
}

func (c *postController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "invalid post id")
	}

	res, err := c.postService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewApiError(fiber.StatusNotFound, "post not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show post", res))
}

func (c *postController) ShowBySlug(ctx *fiber.Ctx) error {
	res, err := c.postService.ShowBySlug(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewApiError(fiber.StatusNotFound, "post not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show post", res))
}

func (c *postController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "invalid post id")
	}

	var req dto.UpdatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.postService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewApiError(fiber.StatusNotFound, "post not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update post", res))
}

func (c *postController) List(ctx *fiber.Ctx) error {
	var req dto.ListPostsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.postService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list posts", res))
}

func (c *postController) Trash(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "invalid post id")
	}

	if err := c.postService.Trash(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success trash post", nil))
}

func (c *postController) Restore(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "invalid post id")
	}

	if err := c.postService.Restore(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success restore post", nil))
}

func (c *postController) DeletePermanent(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "invalid post id")
	}

	if err := c.postService.DeletePermanent(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete post", nil))
}

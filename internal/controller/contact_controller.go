package controller

import (
	"github.com/QTMarketing/lama-cms/internal/dto"
	"github.com/QTMarketing/lama-cms/internal/pkg/serverutils"
	"github.com/QTMarketing/lama-cms/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IContactController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type contactController struct {
	contactService service.IContactService
}

func NewContactController(contactService service.IContactService) IContactController {
	return &contactController{
		contactService: contactService,
	}
}

func (c *contactController) RegisterRoutes(r fiber.Router) {
	public := r.Group("/contact/v1")
	public.Post("", c.Submit)

	h := r.Group("/admin/contact/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Delete(":id", c.Delete)
}

func (c *contactController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contactService.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit contact form", res))
}

func (c *contactController) List(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	perPage := ctx.QueryInt("per_page", 20)

	submissions, total, err := c.contactService.List(ctx.Context(), page, perPage)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list contact submissions", fiber.Map{
		"submissions": submissions,
		"total":       total,
		"page":        page,
		"per_page":    perPage,
	}))
}

func (c *contactController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "invalid submission id")
	}

	if err := c.contactService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete contact submission", nil))
}

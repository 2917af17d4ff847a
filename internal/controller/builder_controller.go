package controller

import (
	"github.com/QTMarketing/lama-cms/internal/dto"
	"github.com/QTMarketing/lama-cms/internal/pkg/serverutils"
	"github.com/QTMarketing/lama-cms/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBuilderController interface {
	RegisterRoutes(r fiber.Router)
}

type builderController struct {
	builderService service.IBuilderService
}

func NewBuilderController(builderService service.IBuilderService) IBuilderController {
	return &builderController{
		builderService: builderService,
	}
}

func (c *builderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/builder/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":pageId", c.GetState)
	h.Put(":pageId/layout", c.SaveLayout)
	h.Post(":pageId/sections", c.AddSection)
	h.Delete(":pageId/sections", c.DeleteSection)
	h.Put(":pageId/sections/move", c.MoveSection)
	h.Post(":pageId/columns", c.AddColumn)
	h.Delete(":pageId/columns", c.DeleteColumn)
	h.Post(":pageId/blocks", c.AddBlock)
	h.Put(":pageId/blocks", c.UpdateBlock)
	h.Delete(":pageId/blocks", c.DeleteBlock)
	h.Put(":pageId/blocks/move", c.MoveBlock)
	h.Put(":pageId/selection", c.SelectBlock)
	h.Put(":pageId/mode", c.SetMode)
}

func pageIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("pageId"))
	if err != nil {
		return uuid.Nil, serverutils.NewApiError(fiber.StatusBadRequest, "invalid page id")
	}
	return id, nil
}

func (c *builderController) GetState(ctx *fiber.Ctx) error {
	pageId, err := pageIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.builderService.GetState(ctx.Context(), pageId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get builder state", res))
}

func (c *builderController) SaveLayout(ctx *fiber.Ctx) error {
	pageId, err := pageIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SaveLayoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.PageId = pageId

	res, err := c.builderService.SaveLayout(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save layout", res))
}

func (c *builderController) AddSection(ctx *fiber.Ctx) error {
	pageId, err := pageIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.AddSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.PageId = pageId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.builderService.AddSection(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add section", res))
}

func (c *builderController) DeleteSection(ctx *fiber.Ctx) error {
	pageId, err := pageIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.DeleteSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.PageId = pageId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.builderService.DeleteSection(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete section", res))
}

func (c *builderController) MoveSection(ctx *fiber.Ctx) error {
	pageId, err := pageIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.MoveSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.PageId = pageId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.builderService.MoveSection(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success move section", res))
}

func (c *builderController) AddColumn(ctx *fiber.Ctx) error {
	pageId, err := pageIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.AddColumnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.PageId = pageId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.builderService.AddColumn(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add column", res))
}

func (c *builderController) DeleteColumn(ctx *fiber.Ctx) error {
	pageId, err := pageIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.DeleteColumnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.PageId = pageId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.builderService.DeleteColumn(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete column", res))
}

func (c *builderController) AddBlock(ctx *fiber.Ctx) error {
	pageId, err := pageIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.AddBlockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.PageId = pageId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.builderService.AddBlock(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add block", res))
}

func (c *builderController) UpdateBlock(ctx *fiber.Ctx) error {
	pageId, err := pageIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateBlockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.PageId = pageId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.builderService.UpdateBlock(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update block", res))
}

func (c *builderController) DeleteBlock(ctx *fiber.Ctx) error {
	pageId, err := pageIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.DeleteBlockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.PageId = pageId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.builderService.DeleteBlock(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete block", res))
}

func (c *builderController) MoveBlock(ctx *fiber.Ctx) error {
	pageId, err := pageIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.MoveBlockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.PageId = pageId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.builderService.MoveBlock(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success move block", res))
}

func (c *builderController) SelectBlock(ctx *fiber.Ctx) error {
	pageId, err := pageIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SelectBlockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.PageId = pageId

	res, err := c.builderService.SelectBlock(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success select block", res))
}

func (c *builderController) SetMode(ctx *fiber.Ctx) error {
	pageId, err := pageIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SetBuilderModeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.PageId = pageId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.builderService.SetMode(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set mode", res))
}

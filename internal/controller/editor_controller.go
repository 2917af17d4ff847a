package controller

import (
	"github.com/QTMarketing/lama-cms/internal/dto"
	"github.com/QTMarketing/lama-cms/internal/pkg/serverutils"
	"github.com/QTMarketing/lama-cms/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEditorController interface {
	RegisterRoutes(r fiber.Router)
}

type editorController struct {
	editorService service.IEditorService
}

func NewEditorController(editorService service.IEditorService) IEditorController {
	return &editorController{
		editorService: editorService,
	}
}

func (c *editorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/editor/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("sessions", c.OpenSession)
	h.Delete("sessions/:sessionId", c.CloseSession)
	h.Get("sessions/:sessionId", c.Serialize)
	h.Put("sessions/:sessionId/selection", c.UpdateSelection)
	h.Get("sessions/:sessionId/insert-items", c.ListInsertItems)
	h.Post("sessions/:sessionId/text", c.InsertText)
	h.Post("sessions/:sessionId/insert-item", c.ExecuteInsertItem)
	h.Post("sessions/:sessionId/slash-command", c.ExecuteSlashCommand)
	h.Post("sessions/:sessionId/bubble-command", c.ExecuteBubbleCommand)
	h.Post("sessions/:sessionId/sidebar-toggle", c.ToggleWidgetSidebar)
	h.Post("sessions/:sessionId/widgets", c.InsertWidget)
	h.Get("sessions/:sessionId/widgets/:blockId", c.GetWidget)
	h.Put("sessions/:sessionId/widgets/:blockId", c.UpdateWidget)
	h.Delete("sessions/:sessionId/widgets/:blockId", c.RemoveWidget)
	h.Post("sessions/:sessionId/images", c.UploadImage)
	h.Delete("sessions/:sessionId/images/pending", c.CancelUpload)
}

func (c *editorController) OpenSession(ctx *fiber.Ctx) error {
	var req dto.OpenEditorSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.editorService.OpenSession(&req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success open editor session", res))
}

func (c *editorController) CloseSession(ctx *fiber.Ctx) error {
	c.editorService.CloseSession(ctx.Params("sessionId"))
	return ctx.JSON(serverutils.SuccessResponse[any]("Success close editor session", nil))
}

func (c *editorController) Serialize(ctx *fiber.Ctx) error {
	res, err := c.editorService.Serialize(ctx.Params("sessionId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success serialize document", res))
}

func (c *editorController) UpdateSelection(ctx *fiber.Ctx) error {
	var req dto.UpdateSelectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SessionId = ctx.Params("sessionId")

	res, err := c.editorService.UpdateSelection(&req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update selection", res))
}

func (c *editorController) ListInsertItems(ctx *fiber.Ctx) error {
	res, err := c.editorService.ListInsertItems(ctx.Params("sessionId"), ctx.Query("query"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list insert items", res))
}

func (c *editorController) InsertText(ctx *fiber.Ctx) error {
	var req dto.InsertTextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SessionId = ctx.Params("sessionId")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.editorService.InsertText(&req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success insert text", res))
}

func (c *editorController) ExecuteInsertItem(ctx *fiber.Ctx) error {
	var req dto.InsertItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SessionId = ctx.Params("sessionId")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.editorService.ExecuteInsertItem(&req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success execute insert item", res))
}

func (c *editorController) ExecuteSlashCommand(ctx *fiber.Ctx) error {
	var req dto.SlashCommandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SessionId = ctx.Params("sessionId")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.editorService.ExecuteSlashCommand(&req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success execute slash command", res))
}

func (c *editorController) ExecuteBubbleCommand(ctx *fiber.Ctx) error {
	var req dto.BubbleCommandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SessionId = ctx.Params("sessionId")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.editorService.ExecuteBubbleCommand(&req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success execute bubble command", res))
}

func (c *editorController) ToggleWidgetSidebar(ctx *fiber.Ctx) error {
	if err := c.editorService.ToggleWidgetSidebar(ctx.Params("sessionId")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success toggle widget sidebar", nil))
}

func (c *editorController) InsertWidget(ctx *fiber.Ctx) error {
	var req dto.InsertWidgetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SessionId = ctx.Params("sessionId")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.editorService.InsertWidget(&req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success insert widget", res))
}

func (c *editorController) GetWidget(ctx *fiber.Ctx) error {
	res, err := c.editorService.GetWidget(ctx.Params("sessionId"), ctx.Params("blockId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get widget", res))
}

func (c *editorController) UpdateWidget(ctx *fiber.Ctx) error {
	var req dto.UpdateWidgetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SessionId = ctx.Params("sessionId")
	req.BlockId = ctx.Params("blockId")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.editorService.UpdateWidget(&req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update widget", res))
}

func (c *editorController) RemoveWidget(ctx *fiber.Ctx) error {
	req := dto.RemoveWidgetRequest{
		SessionId: ctx.Params("sessionId"),
		BlockId:   ctx.Params("blockId"),
	}

	res, err := c.editorService.RemoveWidget(&req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success remove widget", res))
}

func (c *editorController) UploadImage(ctx *fiber.Ctx) error {
	var req dto.UploadImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SessionId = ctx.Params("sessionId")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.editorService.UploadImage(&req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload image", res))
}

func (c *editorController) CancelUpload(ctx *fiber.Ctx) error {
	if err := c.editorService.CancelUpload(ctx.Params("sessionId")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success cancel upload", nil))
}

package controller

import (
	"github.com/QTMarketing/lama-cms/internal/dto"
	"github.com/QTMarketing/lama-cms/internal/pkg/serverutils"
	"github.com/QTMarketing/lama-cms/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	ChangePassword(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &authController{
		authService: authService,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("login", c.Login)

	protected := r.Group("/admin/auth/v1")
	protected.Use(serverutils.JwtMiddleware)
	protected.Put("password", c.ChangePassword)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}

func (c *authController) ChangePassword(ctx *fiber.Ctx) error {
	adminIdStr, _ := ctx.Locals("admin_id").(string)
	adminId, err := uuid.Parse(adminIdStr)
	if err != nil {
		return serverutils.NewApiError(fiber.StatusUnauthorized, "invalid admin token")
	}

	var req dto.ChangePasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.authService.ChangePassword(ctx.Context(), adminId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success change password", nil))
}

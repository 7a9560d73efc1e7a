package controller

import (
	"sellerkit-be/internal/pkg/serverutils"
	"sellerkit-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	GetUser(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/user", c.GetUser)
}

// GetUser syncs the caller from token claims and returns the stored row.
func (c *authController) GetUser(ctx *fiber.Ctx) error {
	claims, ok := serverutils.ClaimsFromCtx(ctx)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing token")
	}

	res, err := c.service.SyncUser(ctx.Context(), claims)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get user", res))
}

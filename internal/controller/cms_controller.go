package controller

import (
	"errors"

	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/pkg/serverutils"
	"sellerkit-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICmsController interface {
	RegisterRoutes(r fiber.Router)
	GetSection(ctx *fiber.Ctx) error
	UpdateSection(ctx *fiber.Ctx) error
}

type cmsController struct {
	service    service.ICmsService
	adminGuard fiber.Handler
}

func NewCmsController(service service.ICmsService, adminGuard fiber.Handler) ICmsController {
	return &cmsController{service: service, adminGuard: adminGuard}
}

func (c *cmsController) RegisterRoutes(r fiber.Router) {
	// Public read for the landing pages; writes go through the admin guard.
	r.Get("/cms/:section", c.GetSection)
	r.Put("/admin/cms/:section", serverutils.JwtMiddleware, c.adminGuard, c.UpdateSection)
}

func (c *cmsController) GetSection(ctx *fiber.Ctx) error {
	section := ctx.Params("section")

	res, err := c.service.GetSection(ctx.Context(), section)
	if err != nil {
		if errors.Is(err, service.ErrSectionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Section not found")
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get cms content", res))
}

func (c *cmsController) UpdateSection(ctx *fiber.Ctx) error {
	section := ctx.Params("section")

	var req dto.UpdateCmsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpsertSection(ctx.Context(), section, req.Content)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update cms content", res))
}

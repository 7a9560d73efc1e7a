package controller

import (
	"errors"

	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/pkg/serverutils"
	"sellerkit-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IToolController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type toolController struct {
	service    service.IToolService
	adminGuard fiber.Handler
}

func NewToolController(service service.IToolService, adminGuard fiber.Handler) IToolController {
	return &toolController{service: service, adminGuard: adminGuard}
}

func (c *toolController) RegisterRoutes(r fiber.Router) {
	// Listing is public; catalog writes are admin only.
	r.Get("/tools", c.GetAll)
	r.Post("/tools", serverutils.JwtMiddleware, c.adminGuard, c.Create)
	r.Put("/tools/:id", serverutils.JwtMiddleware, c.adminGuard, c.Update)
}

func (c *toolController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetActiveTools(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get tools", res))
}

func (c *toolController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateToolRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateTool(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create tool", res))
}

func (c *toolController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid tool id")
	}

	var req dto.UpdateToolRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateTool(ctx.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrToolNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tool not found")
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update tool", res))
}

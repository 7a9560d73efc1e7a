package controller

import (
	"errors"

	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/pkg/serverutils"
	"sellerkit-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStatsController interface {
	RegisterRoutes(r fiber.Router)
	GetUsage(ctx *fiber.Ctx) error
	RecordUsage(ctx *fiber.Ctx) error
}

type statsController struct {
	service service.IUsageService
}

func NewStatsController(service service.IUsageService) IStatsController {
	return &statsController{service: service}
}

func (c *statsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/stats")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/usage", c.GetUsage)
	h.Post("/usage", c.RecordUsage)
}

func (c *statsController) GetUsage(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var toolId *uuid.UUID
	if raw := ctx.Query("tool_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid tool_id")
		}
		toolId = &id
	}

	res, err := c.service.GetUserUsage(ctx.Context(), userId, toolId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get usage stats", res))
}

func (c *statsController) RecordUsage(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.RecordUsageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.RecordUsage(ctx.Context(), userId, &req); err != nil {
		if errors.Is(err, service.ErrToolNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tool not found")
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success record usage", nil))
}

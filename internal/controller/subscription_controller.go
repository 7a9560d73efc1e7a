package controller

import (
	"errors"

	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/pkg/serverutils"
	"sellerkit-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	service service.ISubscriptionService
}

func NewSubscriptionController(service service.ISubscriptionService) ISubscriptionController {
	return &subscriptionController{service: service}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscriptions")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
}

func (c *subscriptionController) GetAll(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetUserSubscriptions(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get subscriptions", res))
}

func (c *subscriptionController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Subscribe(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrAlreadySubscribed) {
			return fiber.NewError(fiber.StatusConflict, "Already subscribed to this tool")
		}
		if errors.Is(err, service.ErrToolNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tool not found")
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create subscription", res))
}

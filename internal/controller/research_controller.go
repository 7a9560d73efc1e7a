package controller

import (
	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/pkg/serverutils"
	"sellerkit-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IResearchController interface {
	RegisterRoutes(r fiber.Router)
	Research(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type researchController struct {
	service service.IResearchService
}

func NewResearchController(service service.IResearchService) IResearchController {
	return &researchController{service: service}
}

func (c *researchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/keyword-research")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Research)
	h.Get("/history", c.History)
}

func (c *researchController) Research(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.KeywordResearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	// Platforms must be present as an array; an empty one is fine. BodyParser
	// leaves the slice nil when the field is missing or not an array.
	if req.Platforms == nil {
		return fiber.NewError(fiber.StatusBadRequest, "seedKeyword and platforms are required")
	}

	res, err := c.service.PerformResearch(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success perform keyword research", res))
}

func (c *researchController) History(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	limit := ctx.QueryInt("limit", 10)

	res, err := c.service.GetHistory(ctx.Context(), userId, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get research history", res))
}

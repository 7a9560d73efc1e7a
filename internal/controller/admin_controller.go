package controller

import (
	"errors"

	"sellerkit-be/internal/dto"
	"sellerkit-be/internal/pkg/serverutils"
	"sellerkit-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetUsers(ctx *fiber.Ctx) error
	GetUsersWithSubscriptions(ctx *fiber.Ctx) error
	UpdateUserStatus(ctx *fiber.Ctx) error
	GetAnalytics(ctx *fiber.Ctx) error
	GetToolAnalytics(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

type adminController struct {
	service    service.IAdminService
	adminGuard fiber.Handler
}

func NewAdminController(service service.IAdminService, adminGuard fiber.Handler) IAdminController {
	return &adminController{service: service, adminGuard: adminGuard}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(serverutils.JwtMiddleware)
	h.Use(c.adminGuard)

	h.Get("/users", c.GetUsers)
	h.Get("/users/subscriptions", c.GetUsersWithSubscriptions)
	h.Patch("/users/:id/status", c.UpdateUserStatus)
	h.Get("/analytics", c.GetAnalytics)
	h.Get("/tools/:id/analytics", c.GetToolAnalytics)
	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLogDetail)
}

func (c *adminController) GetUsers(ctx *fiber.Ctx) error {
	res, err := c.service.GetAllUsers(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get users", res))
}

func (c *adminController) GetUsersWithSubscriptions(ctx *fiber.Ctx) error {
	res, err := c.service.GetUsersWithSubscriptions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get users with subscriptions", res))
}

func (c *adminController) UpdateUserStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.UpdateUserStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateUserStatus(ctx.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update user status", res))
}

func (c *adminController) GetAnalytics(ctx *fiber.Ctx) error {
	res, err := c.service.GetPlatformAnalytics(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get analytics", res))
}

func (c *adminController) GetToolAnalytics(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid tool id")
	}

	res, err := c.service.GetToolAnalytics(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrToolNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tool not found")
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get tool analytics", res))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 50)
	level := ctx.Query("level")

	res, err := c.service.GetSystemLogs(ctx.Context(), page, limit, level)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	res, err := c.service.GetLogDetail(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Log not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get log detail", res))
}

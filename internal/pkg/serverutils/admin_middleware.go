// FILE: internal/pkg/serverutils/admin_middleware.go
package serverutils

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RoleLoader resolves the stored role of a user. The admin guard checks the
// database row rather than trusting a token claim.
type RoleLoader interface {
	GetUserRole(ctx context.Context, userId uuid.UUID) (string, error)
}

// AdminOnly builds the single authorization guard used by every admin route.
// It must run after JwtMiddleware.
func AdminOnly(loader RoleLoader) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userIdStr, _ := ctx.Locals("user_id").(string)
		userId, err := uuid.Parse(userIdStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
		}

		role, err := loader.GetUserRole(ctx.Context(), userId)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, "Failed to resolve caller"))
		}
		if role != "admin" {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Admin access required"))
		}
		return ctx.Next()
	}
}

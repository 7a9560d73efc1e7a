package serverutils

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubRoleLoader struct {
	roles map[uuid.UUID]string
}

func (s *stubRoleLoader) GetUserRole(ctx context.Context, userId uuid.UUID) (string, error) {
	return s.roles[userId], nil
}

func newGuardedApp(loader RoleLoader, callerId string) *fiber.App {
	app := fiber.New()
	app.Get("/admin",
		func(ctx *fiber.Ctx) error {
			ctx.Locals("user_id", callerId)
			return ctx.Next()
		},
		AdminOnly(loader),
		func(ctx *fiber.Ctx) error {
			return ctx.JSON(SuccessResponse[any]("ok", nil))
		},
	)
	return app
}

func TestAdminOnly_AllowsAdminRow(t *testing.T) {
	adminId := uuid.New()
	loader := &stubRoleLoader{roles: map[uuid.UUID]string{adminId: "admin"}}
	app := newGuardedApp(loader, adminId.String())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminOnly_ForbidsNonAdmin(t *testing.T) {
	sellerId := uuid.New()
	loader := &stubRoleLoader{roles: map[uuid.UUID]string{sellerId: "seller"}}
	app := newGuardedApp(loader, sellerId.String())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminOnly_ForbidsUnknownCaller(t *testing.T) {
	// A caller with a valid token but no stored row gets no admin access.
	loader := &stubRoleLoader{roles: map[uuid.UUID]string{}}
	app := newGuardedApp(loader, uuid.New().String())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminOnly_RejectsMissingIdentity(t *testing.T) {
	loader := &stubRoleLoader{roles: map[uuid.UUID]string{}}
	app := newGuardedApp(loader, "")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

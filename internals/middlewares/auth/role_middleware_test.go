package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoleApp(role interface{}, allowed ...string) *fiber.App {
	app := fiber.New()
	app.Get("/admin-only",
		func(c *fiber.Ctx) error {
			if role != nil {
				c.Locals("userRole", role)
			}
			return c.Next()
		},
		OnlyRoles("acesso restrito", allowed...),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)
	return app
}

func TestOnlyRoles(t *testing.T) {
	t.Run("papel permitido passa", func(t *testing.T) {
		app := newRoleApp("admin", "admin")
		resp, err := app.Test(httptest.NewRequest("GET", "/admin-only", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("papel fora da lista: 403", func(t *testing.T) {
		app := newRoleApp("leader", "admin")
		resp, err := app.Test(httptest.NewRequest("GET", "/admin-only", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("vários papéis permitidos", func(t *testing.T) {
		app := newRoleApp("leader", "admin", "leader")
		resp, err := app.Test(httptest.NewRequest("GET", "/admin-only", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("sem claim de papel: 401", func(t *testing.T) {
		app := newRoleApp(nil, "admin")
		resp, err := app.Test(httptest.NewRequest("GET", "/admin-only", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

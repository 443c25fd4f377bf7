package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videira_backend/internals/configs"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/secure", AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  c.Locals("user_id"),
			"role":     c.Locals("userRole"),
			"cell_ids": c.Locals("cell_ids"),
		})
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = old })

	validClaims := jwt.MapClaims{
		"sub":      "3f6b2c9e-0000-4000-8000-000000000001",
		"role":     "leader",
		"cell_ids": []string{"cell-1", "cell-2"},
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	}

	t.Run("sem token: 401", func(t *testing.T) {
		app := newProtectedApp()
		req := httptest.NewRequest("GET", "/secure", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Bearer válido passa e popula locals", func(t *testing.T) {
		app := newProtectedApp()
		req := httptest.NewRequest("GET", "/secure", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", validClaims))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("cookie access_token serve de fallback", func(t *testing.T) {
		app := newProtectedApp()
		req := httptest.NewRequest("GET", "/secure", nil)
		req.Header.Set("Cookie", "access_token="+signToken(t, "test-secret", validClaims))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("assinatura errada: 401", func(t *testing.T) {
		app := newProtectedApp()
		req := httptest.NewRequest("GET", "/secure", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "outro-secret", validClaims))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token expirado além da tolerância: 401", func(t *testing.T) {
		expired := jwt.MapClaims{
			"sub": "3f6b2c9e-0000-4000-8000-000000000001",
			"exp": time.Now().Add(-time.Hour).Unix(),
		}
		app := newProtectedApp()
		req := httptest.NewRequest("GET", "/secure", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", expired))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token sem sub: 401", func(t *testing.T) {
		noSub := jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		}
		app := newProtectedApp()
		req := httptest.NewRequest("GET", "/secure", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", noSub))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestValidateTokenExpiry(t *testing.T) {
	t.Run("dentro da tolerância passa", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": float64(time.Now().Add(-10 * time.Second).Unix())}
		assert.NoError(t, validateTokenExpiry(claims, 30*time.Second))
	})

	t.Run("fora da tolerância falha", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": float64(time.Now().Add(-time.Minute).Unix())}
		assert.Error(t, validateTokenExpiry(claims, 30*time.Second))
	})

	t.Run("sem exp falha", func(t *testing.T) {
		assert.Error(t, validateTokenExpiry(jwt.MapClaims{}, 0))
	})
}

package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"videira_backend/internals/configs"
	"videira_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra os middlewares globais, na ordem certa:
// recovery primeiro, depois CORS, log e rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())

	// fotos de contato convertidas para webp ficam no disco público
	app.Static("/uploads", configs.UploadDir)
}

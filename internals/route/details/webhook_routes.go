package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	webhookController "videira_backend/internals/features/webhooks/controller"
)

// /api/a — configuração de webhooks de saída
func WebhookAdminRoutes(router fiber.Router, db *gorm.DB) {
	webhooks := webhookController.NewWebhookConfigController(db)

	router.Post("/webhooks", webhooks.Create)
	router.Get("/webhooks", webhooks.List)
	router.Patch("/webhooks/:id", webhooks.Update)
	router.Delete("/webhooks/:id", webhooks.Delete)
}

package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	noticeController "videira_backend/internals/features/home/notices/controller"
	settingController "videira_backend/internals/features/home/settings/controller"
)

// /api/a — avisos e configurações
func HomeAdminRoutes(router fiber.Router, db *gorm.DB) {
	notices := noticeController.NewNoticeController(db)
	settings := settingController.NewSettingController(db)

	router.Get("/notices", notices.List)
	router.Post("/notices", notices.Create)
	router.Patch("/notices/:id", notices.Update)
	router.Delete("/notices/:id", notices.Delete)

	router.Get("/settings", settings.List)
	router.Put("/settings", settings.Upsert)
	router.Delete("/settings/:key", settings.Delete)
}

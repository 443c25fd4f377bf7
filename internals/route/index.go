// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"videira_backend/internals/constants"
	authMiddleware "videira_backend/internals/middlewares/auth"
	routeDetails "videira_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	// Formulário, check-in por código, página da célula, QR e avisos
	log.Println("[INFO] Setting up PUBLIC routes...")
	routeDetails.PublicRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	// Líder e admin: JWT obrigatório
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(
			constants.RoleErrorLeader("o painel"),
			constants.AdminAndLeader...,
		),
	)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("a administração"),
			constants.AdminOnly...,
		),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Congregation routes...")
	routeDetails.CongregationUserRoutes(private, db)
	routeDetails.CongregationAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Cells routes...")
	routeDetails.CellsUserRoutes(private, db)
	routeDetails.CellsAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Webhook routes...")
	routeDetails.WebhookAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Home routes...")
	routeDetails.HomeAdminRoutes(admin, db)

	log.Println("[INFO] Mounting User admin routes...")
	routeDetails.UserAdminRoutes(admin, db)
}

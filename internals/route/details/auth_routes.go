package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "videira_backend/internals/features/users/auth/controller"
	"videira_backend/internals/middlewares"
	authMiddleware "videira_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh", ctrl.Refresh)
	auth.Post("/logout", ctrl.Logout)
	auth.Get("/me", authMiddleware.AuthMiddleware(), ctrl.Me)
}

// /api/a — cadastro de usuários do painel (admin cria admins/líderes/membros)
func UserAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)
	router.Post("/users", ctrl.Register)
}

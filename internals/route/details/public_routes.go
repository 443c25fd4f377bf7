package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "videira_backend/internals/features/cells/attendance/controller"
	formController "videira_backend/internals/features/congregation/forms/controller"
	noticeController "videira_backend/internals/features/home/notices/controller"
	settingController "videira_backend/internals/features/home/settings/controller"
	"videira_backend/internals/middlewares"
)

// Rotas sem login: formulário de cadastro, check-in, página da célula,
// redirect de QR e mural de avisos.
func PublicRoutes(app *fiber.App, db *gorm.DB) {
	form := formController.NewPublicFormController(db)
	attendance := attendanceController.NewPublicAttendanceController(db)
	notices := noticeController.NewNoticeController(db)
	settings := settingController.NewSettingController(db)

	app.Post("/form", middlewares.PublicFormRateLimiter(), form.Submit)
	app.Post("/form/:eventKey", middlewares.PublicFormRateLimiter(), form.Submit)

	app.Post("/attendance/:code", middlewares.PublicFormRateLimiter(), attendance.SelfCheckIn)
	app.Get("/cell-attendance/:token", attendance.ResolveCellByToken)

	app.Get("/qr/:keyword", settings.QRRedirect)
	app.Get("/avisos", notices.PublicList)
}

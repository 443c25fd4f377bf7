package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "videira_backend/internals/features/cells/attendance/controller"
	cellController "videira_backend/internals/features/cells/cells/controller"
)

// /api/u — chamada da célula e consulta
func CellsUserRoutes(router fiber.Router, db *gorm.DB) {
	cells := cellController.NewCellController(db)
	attendance := attendanceController.NewAttendanceController(db)

	router.Get("/cells", cells.List)
	router.Get("/cells/:id", cells.GetByID)

	router.Post("/attendances/mark", attendance.Mark)
	router.Post("/attendances/visitor", attendance.AddVisitor)
	router.Get("/attendances/cell/:cellId", attendance.Roster)
}

// /api/a — gestão de células
func CellsAdminRoutes(router fiber.Router, db *gorm.DB) {
	cells := cellController.NewCellController(db)

	router.Post("/cells", cells.Create)
	router.Patch("/cells/:id", cells.Update)
	router.Delete("/cells/:id", cells.Delete)
}

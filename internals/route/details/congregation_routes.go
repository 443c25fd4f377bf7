package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactController "videira_backend/internals/features/congregation/contacts/controller"
	formController "videira_backend/internals/features/congregation/forms/controller"
	genealogyController "videira_backend/internals/features/congregation/genealogy/controller"
	ministryController "videira_backend/internals/features/congregation/ministries/controller"
	pipelineController "videira_backend/internals/features/congregation/pipeline/controller"
)

// /api/u — admin e líder (líder enxerga só o próprio escopo)
func CongregationUserRoutes(router fiber.Router, db *gorm.DB) {
	contacts := contactController.NewContactController(db)
	stages := pipelineController.NewPipelineStageController(db)
	assign := pipelineController.NewStageAssignController(db)
	genealogy := genealogyController.NewGenealogyController(db)
	ministries := ministryController.NewMinistryController(db)

	router.Post("/contacts", contacts.Create)
	router.Get("/contacts", contacts.List)
	router.Get("/contacts/code/:code", contacts.GetByCode)
	router.Get("/contacts/:id", contacts.GetByID)
	router.Patch("/contacts/:id", contacts.Update)
	router.Post("/contacts/:id/photo", contacts.UploadPhoto)
	router.Patch("/contacts/:id/stage", assign.AssignStage)

	router.Get("/pipeline/stages", stages.List)
	router.Get("/pipeline/board", assign.Board)

	router.Get("/genealogy", genealogy.Get)

	router.Get("/ministries", ministries.List)
	router.Get("/ministries/:id/members", ministries.Roster)
}

// /api/a — somente admin
func CongregationAdminRoutes(router fiber.Router, db *gorm.DB) {
	contacts := contactController.NewContactController(db)
	stages := pipelineController.NewPipelineStageController(db)
	ministries := ministryController.NewMinistryController(db)
	formEvents := formController.NewFormEventController(db)

	router.Delete("/contacts/:id", contacts.Delete)

	router.Post("/pipeline/stages", stages.Create)
	router.Patch("/pipeline/stages/:id", stages.Update)
	router.Delete("/pipeline/stages/:id", stages.Delete)

	router.Post("/ministries", ministries.Create)
	router.Patch("/ministries/:id", ministries.Update)
	router.Delete("/ministries/:id", ministries.Delete)
	router.Post("/ministries/:id/members", ministries.AddMember)
	router.Delete("/ministries/:id/members/:contactId", ministries.RemoveMember)

	router.Post("/form-events", formEvents.Create)
	router.Get("/form-events", formEvents.List)
	router.Patch("/form-events/:id", formEvents.Update)
	router.Delete("/form-events/:id", formEvents.Delete)
}

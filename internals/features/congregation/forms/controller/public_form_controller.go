package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactDTO "videira_backend/internals/features/congregation/contacts/dto"
	contactService "videira_backend/internals/features/congregation/contacts/service"
	"videira_backend/internals/features/congregation/forms/model"
	helper "videira_backend/internals/helpers"
)

// PublicFormController: cadastro sem login (landing page / campanhas)
type PublicFormController struct {
	DB *gorm.DB
}

func NewPublicFormController(db *gorm.DB) *PublicFormController {
	return &PublicFormController{DB: db}
}

// 🟢 POST /form/:eventKey?
// Sem eventKey: formulário padrão. Com eventKey: precisa existir e estar ativo.
func (ctrl *PublicFormController) Submit(c *fiber.Ctx) error {
	eventKey := strings.TrimSpace(c.Params("eventKey"))
	if eventKey != "" {
		var event model.FormEventModel
		if err := ctrl.DB.
			Where("event_key = ? AND event_active = TRUE", eventKey).
			First(&event).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Formulário não encontrado ou encerrado")
		}
	}

	var req contactDTO.ContactCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}

	contact, fieldErrors, err := contactService.CreateContact(ctrl.DB, &req)
	if err != nil {
		log.Printf("[ERROR] Falha no formulário público (%s): %v", eventKey, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao enviar cadastro")
	}
	if len(fieldErrors) > 0 {
		return helper.JsonValidationError(c, fieldErrors)
	}

	// A página de confirmação mostra o código de presença
	return helper.JsonCreated(c, "Cadastro recebido", fiber.Map{
		"contact_id":      contact.ContactID,
		"contact_name":    contact.ContactName,
		"attendance_code": contact.ContactAttendanceCode,
	})
}

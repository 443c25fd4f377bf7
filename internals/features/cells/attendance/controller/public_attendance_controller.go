package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"videira_backend/internals/features/cells/attendance/dto"
	"videira_backend/internals/features/cells/attendance/service"
	cellModel "videira_backend/internals/features/cells/cells/model"
	contactModel "videira_backend/internals/features/congregation/contacts/model"
	helper "videira_backend/internals/helpers"
)

func timeNowDate() string {
	return time.Now().Format("2006-01-02")
}

// PublicAttendanceController: rotas sem login (QR / link da célula)
type PublicAttendanceController struct {
	DB *gorm.DB
}

func NewPublicAttendanceController(db *gorm.DB) *PublicAttendanceController {
	return &PublicAttendanceController{DB: db}
}

// 🟢 POST /attendance/:code — auto check-in pelo código do contato
// Marca presença hoje na célula do próprio contato.
func (ctrl *PublicAttendanceController) SelfCheckIn(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Código obrigatório")
	}

	var contact contactModel.ContactModel
	if err := ctrl.DB.Where("contact_attendance_code = ?", code).First(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Código não encontrado")
	}
	if contact.ContactCellID == nil {
		return helper.JsonValidationError(c, map[string][]string{
			"code": {"contato ainda não pertence a uma célula"},
		})
	}

	date, _ := dto.ParseAttendanceDate(timeNowDate())
	att, err := service.MarkPresent(ctrl.DB, contact.ContactID, *contact.ContactCellID, date, true, false)
	if err != nil {
		log.Printf("[ERROR] Falha no auto check-in %s: %v", code, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao registrar presença")
	}

	return helper.JsonOK(c, "Presença registrada", fiber.Map{
		"contact_name": contact.ContactName,
		"attendance":   dto.ToAttendanceResponse(att),
	})
}

// 🟢 GET /cell-attendance/:token — resolve a célula para a página pública
func (ctrl *PublicAttendanceController) ResolveCellByToken(c *fiber.Ctx) error {
	token := strings.ToLower(strings.TrimSpace(c.Params("token")))
	if token == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token obrigatório")
	}

	var cell cellModel.CellModel
	if err := ctrl.DB.Where("cell_token = ?", token).First(&cell).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Célula não encontrada")
	}

	// A página pública só precisa de nome e id; o token não volta
	return helper.JsonOK(c, "ok", fiber.Map{
		"cell_id":   cell.CellID,
		"cell_name": cell.CellName,
	})
}

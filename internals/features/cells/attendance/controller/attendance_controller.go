package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"videira_backend/internals/features/cells/attendance/dto"
	"videira_backend/internals/features/cells/attendance/model"
	"videira_backend/internals/features/cells/attendance/service"
	contactModel "videira_backend/internals/features/congregation/contacts/model"
	helper "videira_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// Líder só lança presença nas células que lidera
func (ctrl *AttendanceController) canTouchCell(c *fiber.Ctx, cellID uuid.UUID) bool {
	if helper.IsAdmin(c) {
		return true
	}
	for _, id := range helper.GetLeaderCellIDs(c) {
		if id == cellID {
			return true
		}
	}
	return false
}

// 🟢 POST /api/u/attendances/mark
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	contactID, _ := uuid.Parse(req.ContactID)
	cellID, _ := uuid.Parse(req.CellID)

	date, err := dto.ParseAttendanceDate(req.Date)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"date": {"use o formato YYYY-MM-DD"},
		})
	}

	if !ctrl.canTouchCell(c, cellID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Você não lidera esta célula")
	}

	var contact contactModel.ContactModel
	if err := ctrl.DB.Where("contact_id = ?", contactID).First(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Contato não encontrado")
	}

	present := true
	if req.Present != nil {
		present = *req.Present
	}

	att, err := service.MarkPresent(ctrl.DB, contactID, cellID, date, present, false)
	if err != nil {
		log.Printf("[ERROR] Falha ao lançar presença: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao lançar presença")
	}
	return helper.JsonOK(c, "Presença registrada", dto.ToAttendanceResponse(att))
}

// 🟢 POST /api/u/attendances/visitor
func (ctrl *AttendanceController) AddVisitor(c *fiber.Ctx) error {
	var req dto.AddVisitorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	cellID, _ := uuid.Parse(req.CellID)
	date, err := dto.ParseAttendanceDate(req.Date)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"date": {"use o formato YYYY-MM-DD"},
		})
	}

	if !ctrl.canTouchCell(c, cellID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Você não lidera esta célula")
	}

	contact, att, err := service.AddVisitor(ctrl.DB, req.Name, req.Whatsapp, cellID, date)
	if err != nil {
		log.Printf("[ERROR] Falha ao registrar visitante: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao registrar visitante")
	}

	return helper.JsonCreated(c, "Visitante registrado", fiber.Map{
		"contact":    contact,
		"attendance": dto.ToAttendanceResponse(att),
	})
}

// 🟢 GET /api/u/attendances/cell/:cellId?date=YYYY-MM-DD
// Chamada do dia: membros da célula + presenças já lançadas.
func (ctrl *AttendanceController) Roster(c *fiber.Ctx) error {
	cellID, err := uuid.Parse(c.Params("cellId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Célula ID inválido")
	}
	if !ctrl.canTouchCell(c, cellID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Você não lidera esta célula")
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = timeNowDate()
	}
	date, err := dto.ParseAttendanceDate(dateStr)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"date": {"use o formato YYYY-MM-DD"},
		})
	}

	var members []contactModel.ContactModel
	if err := ctrl.DB.
		Where("contact_cell_id = ?", cellID).
		Order("contact_name ASC").
		Find(&members).Error; err != nil {
		log.Printf("[ERROR] Falha ao carregar membros da célula: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao carregar chamada")
	}

	var marks []model.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_cell_id = ? AND attendance_date = ?", cellID, date).
		Find(&marks).Error; err != nil {
		log.Printf("[ERROR] Falha ao carregar presenças: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao carregar chamada")
	}

	byContact := make(map[uuid.UUID]*model.AttendanceModel, len(marks))
	for i := range marks {
		byContact[marks[i].AttendanceContactID] = &marks[i]
	}

	roster := make([]dto.RosterEntryResponse, 0, len(members))
	seen := make(map[uuid.UUID]bool, len(members))
	for i := range members {
		entry := dto.RosterEntryResponse{
			ContactID:   members[i].ContactID,
			ContactName: members[i].ContactName,
		}
		if mark, ok := byContact[members[i].ContactID]; ok {
			entry.Present = &mark.AttendancePresent
			entry.Visitor = mark.AttendanceVisitor
		}
		seen[members[i].ContactID] = true
		roster = append(roster, entry)
	}

	// Visitantes marcados no dia podem ainda não constar como membros
	for i := range marks {
		if seen[marks[i].AttendanceContactID] {
			continue
		}
		var visitor contactModel.ContactModel
		if err := ctrl.DB.Where("contact_id = ?", marks[i].AttendanceContactID).First(&visitor).Error; err != nil {
			continue
		}
		roster = append(roster, dto.RosterEntryResponse{
			ContactID:   visitor.ContactID,
			ContactName: visitor.ContactName,
			Present:     &marks[i].AttendancePresent,
			Visitor:     marks[i].AttendanceVisitor,
		})
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"date":   date.Format("2006-01-02"),
		"roster": roster,
	})
}

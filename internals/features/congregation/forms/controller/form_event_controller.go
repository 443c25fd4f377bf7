package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"videira_backend/internals/features/congregation/forms/model"
	helper "videira_backend/internals/helpers"
)

type FormEventController struct {
	DB *gorm.DB
}

func NewFormEventController(db *gorm.DB) *FormEventController {
	return &FormEventController{DB: db}
}

type formEventRequest struct {
	EventKey    string `json:"event_key" validate:"required,min=2,max=80,lowercase"`
	EventTitle  string `json:"event_title" validate:"required,min=2,max=200"`
	EventActive *bool  `json:"event_active"`
}

// 🟢 POST /api/a/form-events
func (ctrl *FormEventController) Create(c *fiber.Ctx) error {
	var req formEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	event := model.FormEventModel{
		EventKey:    strings.TrimSpace(req.EventKey),
		EventTitle:  strings.TrimSpace(req.EventTitle),
		EventActive: true,
	}
	if req.EventActive != nil {
		event.EventActive = *req.EventActive
	}

	if err := ctrl.DB.Create(&event).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "event_key já em uso")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar formulário")
	}
	return helper.JsonCreated(c, "Formulário criado", event)
}

// 🟢 GET /api/a/form-events
func (ctrl *FormEventController) List(c *fiber.Ctx) error {
	var events []model.FormEventModel
	if err := ctrl.DB.Order("event_created_at DESC").Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar formulários")
	}
	return helper.JsonOK(c, "ok", events)
}

// 🟡 PATCH /api/a/form-events/:id — liga/desliga ou renomeia
func (ctrl *FormEventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formulário ID inválido")
	}

	var event model.FormEventModel
	if err := ctrl.DB.Where("event_id = ?", id).First(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Formulário não encontrado")
	}

	var req struct {
		EventTitle  *string `json:"event_title"`
		EventActive *bool   `json:"event_active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}

	updates := map[string]interface{}{}
	if req.EventTitle != nil {
		updates["event_title"] = strings.TrimSpace(*req.EventTitle)
	}
	if req.EventActive != nil {
		updates["event_active"] = *req.EventActive
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum campo para atualizar")
	}

	if err := ctrl.DB.Model(&event).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar formulário")
	}
	if err := ctrl.DB.Where("event_id = ?", id).First(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar formulário")
	}
	return helper.JsonUpdated(c, "Formulário atualizado", event)
}

// 🔴 DELETE /api/a/form-events/:id
func (ctrl *FormEventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formulário ID inválido")
	}
	if err := ctrl.DB.Where("event_id = ?", id).Delete(&model.FormEventModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover formulário")
	}
	return helper.JsonDeleted(c, "Formulário removido", nil)
}

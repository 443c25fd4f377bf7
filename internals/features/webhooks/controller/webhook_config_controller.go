package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"videira_backend/internals/features/webhooks/dto"
	"videira_backend/internals/features/webhooks/model"
	helper "videira_backend/internals/helpers"
)

type WebhookConfigController struct {
	DB *gorm.DB
}

func NewWebhookConfigController(db *gorm.DB) *WebhookConfigController {
	return &WebhookConfigController{DB: db}
}

// 🟢 POST /api/a/webhooks
func (ctrl *WebhookConfigController) Create(c *fiber.Ctx) error {
	var req dto.WebhookConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	cfg := req.ToModel()
	if err := ctrl.DB.Create(cfg).Error; err != nil {
		log.Printf("[ERROR] Falha ao salvar webhook: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar webhook")
	}

	return helper.JsonCreated(c, "Webhook cadastrado", dto.ToWebhookConfigResponse(cfg))
}

// 🟢 GET /api/a/webhooks?event=
func (ctrl *WebhookConfigController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.WebhookConfigModel{}).Order("webhook_created_at DESC")
	if event := strings.TrimSpace(c.Query("event")); event != "" {
		q = q.Where("webhook_event = ?", event)
	}

	var configs []model.WebhookConfigModel
	if err := q.Find(&configs).Error; err != nil {
		log.Printf("[ERROR] Falha ao listar webhooks: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar webhooks")
	}

	return helper.JsonOK(c, "ok", dto.ToWebhookConfigResponseList(configs))
}

// 🟡 PATCH /api/a/webhooks/:id
func (ctrl *WebhookConfigController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Webhook ID inválido")
	}

	var cfg model.WebhookConfigModel
	if err := ctrl.DB.Where("webhook_id = ?", id).First(&cfg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Webhook não encontrado")
	}

	var req dto.WebhookConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated := req.ToModel()
	updates := map[string]interface{}{
		"webhook_url":     updated.WebhookURL,
		"webhook_event":   updated.WebhookEvent,
		"webhook_headers": updated.WebhookHeaders,
		"webhook_active":  updated.WebhookActive,
	}
	if err := ctrl.DB.Model(&cfg).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar webhook")
	}

	if err := ctrl.DB.Where("webhook_id = ?", id).First(&cfg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar webhook")
	}
	return helper.JsonUpdated(c, "Webhook atualizado", dto.ToWebhookConfigResponse(&cfg))
}

// 🔴 DELETE /api/a/webhooks/:id
func (ctrl *WebhookConfigController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Webhook ID inválido")
	}

	if err := ctrl.DB.Where("webhook_id = ?", id).Delete(&model.WebhookConfigModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover webhook")
	}
	return helper.JsonDeleted(c, "Webhook removido", nil)
}

package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"videira_backend/internals/features/home/notices/dto"
	"videira_backend/internals/features/home/notices/model"
	helper "videira_backend/internals/helpers"
)

type NoticeController struct {
	DB *gorm.DB
}

func NewNoticeController(db *gorm.DB) *NoticeController {
	return &NoticeController{DB: db}
}

// 🟢 GET /avisos — mural público, só avisos ativos, mais recentes primeiro
func (ctrl *NoticeController) PublicList(c *fiber.Ctx) error {
	var notices []model.NoticeModel
	if err := ctrl.DB.
		Where("notice_active = TRUE").
		Order("notice_published_at DESC NULLS LAST").
		Find(&notices).Error; err != nil {
		log.Printf("[ERROR] Falha ao listar avisos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar avisos")
	}
	return helper.JsonOK(c, "ok", dto.ToNoticeResponseList(notices))
}

// 🟢 GET /api/a/notices — todos, inclusive inativos
func (ctrl *NoticeController) List(c *fiber.Ctx) error {
	var notices []model.NoticeModel
	if err := ctrl.DB.Order("notice_created_at DESC").Find(&notices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar avisos")
	}
	return helper.JsonOK(c, "ok", dto.ToNoticeResponseList(notices))
}

// 🟢 POST /api/a/notices
func (ctrl *NoticeController) Create(c *fiber.Ctx) error {
	var req dto.NoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now()
	notice := model.NoticeModel{
		NoticeTitle:       req.NoticeTitle,
		NoticeBody:        req.NoticeBody,
		NoticeActive:      true,
		NoticePublishedAt: &now,
	}
	if req.NoticeActive != nil {
		notice.NoticeActive = *req.NoticeActive
	}

	if err := ctrl.DB.Create(&notice).Error; err != nil {
		log.Printf("[ERROR] Falha ao criar aviso: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar aviso")
	}
	return helper.JsonCreated(c, "Aviso criado", dto.ToNoticeResponse(&notice))
}

// 🟡 PATCH /api/a/notices/:id
func (ctrl *NoticeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Aviso ID inválido")
	}

	var notice model.NoticeModel
	if err := ctrl.DB.Where("notice_id = ?", id).First(&notice).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Aviso não encontrado")
	}

	var req dto.NoticeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}

	updates := map[string]interface{}{}
	if req.NoticeTitle != nil {
		updates["notice_title"] = *req.NoticeTitle
	}
	if req.NoticeBody != nil {
		updates["notice_body"] = *req.NoticeBody
	}
	if req.NoticeActive != nil {
		updates["notice_active"] = *req.NoticeActive
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum campo para atualizar")
	}

	if err := ctrl.DB.Model(&notice).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar aviso")
	}
	if err := ctrl.DB.Where("notice_id = ?", id).First(&notice).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar aviso")
	}
	return helper.JsonUpdated(c, "Aviso atualizado", dto.ToNoticeResponse(&notice))
}

// 🔴 DELETE /api/a/notices/:id
func (ctrl *NoticeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Aviso ID inválido")
	}
	if err := ctrl.DB.Where("notice_id = ?", id).Delete(&model.NoticeModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover aviso")
	}
	return helper.JsonDeleted(c, "Aviso removido", nil)
}

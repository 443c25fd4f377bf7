package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"videira_backend/internals/features/congregation/pipeline/dto"
	"videira_backend/internals/features/congregation/pipeline/model"
	helper "videira_backend/internals/helpers"
)

type PipelineStageController struct {
	DB *gorm.DB
}

func NewPipelineStageController(db *gorm.DB) *PipelineStageController {
	return &PipelineStageController{DB: db}
}

// 🟢 POST /api/a/pipeline/stages
func (ctrl *PipelineStageController) Create(c *fiber.Ctx) error {
	var req dto.PipelineStageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	stage := req.ToModel()
	if req.StagePosition == nil {
		// sem posição explícita: entra no fim da ordem
		var maxPos *int
		if err := ctrl.DB.Model(&model.PipelineStageModel{}).
			Select("MAX(stage_position)").Scan(&maxPos).Error; err == nil && maxPos != nil {
			stage.StagePosition = *maxPos + 1
		}
	}

	if err := ctrl.DB.Create(stage).Error; err != nil {
		log.Printf("[ERROR] Falha ao criar etapa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar etapa")
	}
	return helper.JsonCreated(c, "Etapa criada", dto.ToPipelineStageResponse(stage))
}

// 🟢 GET /api/u/pipeline/stages (ordem total por stage_position)
func (ctrl *PipelineStageController) List(c *fiber.Ctx) error {
	var stages []model.PipelineStageModel
	if err := ctrl.DB.Order("stage_position ASC").Find(&stages).Error; err != nil {
		log.Printf("[ERROR] Falha ao listar etapas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar etapas")
	}
	return helper.JsonOK(c, "ok", dto.ToPipelineStageResponseList(stages))
}

// 🟡 PATCH /api/a/pipeline/stages/:id
func (ctrl *PipelineStageController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Etapa ID inválido")
	}

	var stage model.PipelineStageModel
	if err := ctrl.DB.Where("stage_id = ?", id).First(&stage).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Etapa não encontrada")
	}

	var req dto.PipelineStageUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}

	updates := map[string]interface{}{}
	if req.StageName != nil {
		updates["stage_name"] = *req.StageName
	}
	if req.StageColor != nil {
		updates["stage_color"] = *req.StageColor
	}
	if req.StagePosition != nil {
		updates["stage_position"] = *req.StagePosition
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum campo para atualizar")
	}

	if err := ctrl.DB.Model(&stage).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar etapa")
	}
	if err := ctrl.DB.Where("stage_id = ?", id).First(&stage).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar etapa")
	}
	return helper.JsonUpdated(c, "Etapa atualizada", dto.ToPipelineStageResponse(&stage))
}

// 🔴 DELETE /api/a/pipeline/stages/:id
// Contatos na etapa ficam sem etapa (FK vira NULL)
func (ctrl *PipelineStageController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Etapa ID inválido")
	}

	var stage model.PipelineStageModel
	if err := ctrl.DB.Where("stage_id = ?", id).First(&stage).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Etapa não encontrada")
	}

	tx := ctrl.DB.Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao iniciar transação")
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Table("contacts").
		Where("contact_pipeline_stage_id = ?", id).
		Update("contact_pipeline_stage_id", nil).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao desvincular contatos da etapa")
	}
	if err := tx.Delete(&stage).Error; err != nil {
		tx.Rollback()
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover etapa")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar alterações")
	}

	return helper.JsonDeleted(c, "Etapa removida", nil)
}

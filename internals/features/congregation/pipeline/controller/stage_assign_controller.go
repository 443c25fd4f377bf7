package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	contactDTO "videira_backend/internals/features/congregation/contacts/dto"
	contactModel "videira_backend/internals/features/congregation/contacts/model"
	"videira_backend/internals/features/congregation/pipeline/dto"
	"videira_backend/internals/features/congregation/pipeline/model"
	"videira_backend/internals/features/congregation/pipeline/service"
	helper "videira_backend/internals/helpers"
)

type StageAssignController struct {
	DB *gorm.DB
}

func NewStageAssignController(db *gorm.DB) *StageAssignController {
	return &StageAssignController{DB: db}
}

// 🟡 PATCH /api/u/contacts/:id/stage  (body: { "stage_id": "..." | "no-stage" })
// Movimento livre entre etapas (frente ou trás); sem histórico.
func (ctrl *StageAssignController) AssignStage(c *fiber.Ctx) error {
	contactID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Contato ID inválido")
	}

	var body struct {
		StageID string `json:"stage_id"`
	}
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.StageID) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "stage_id ausente")
	}

	var contact contactModel.ContactModel
	if err := ctrl.DB.Where("contact_id = ?", contactID).First(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Contato não encontrado")
	}

	// guard: admin, ou líder com o contato no próprio escopo
	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if !service.CanAssignStage(helper.GetUserRole(c), callerID, &contact, helper.GetLeaderCellIDs(c)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Sem permissão para mover este contato")
	}

	// "no-stage"/"none" tiram o contato do funil
	stageID, ok := contactDTO.NormalizeSentinelUUID(&body.StageID)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "stage_id inválido")
	}
	if stageID != nil {
		var count int64
		if err := ctrl.DB.Model(&model.PipelineStageModel{}).
			Where("stage_id = ?", *stageID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar etapa")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Etapa não encontrada")
		}
	}

	if err := ctrl.DB.Model(&contact).
		Update("contact_pipeline_stage_id", stageID).Error; err != nil {
		log.Printf("[ERROR] Falha ao mover contato de etapa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao mover contato")
	}

	contact.ContactStageID = stageID
	return helper.JsonUpdated(c, "Contato movido de etapa", contactDTO.ToContactResponse(&contact))
}

// 🟢 GET /api/u/pipeline/board — etapas ordenadas com seus contatos (kanban)
func (ctrl *StageAssignController) Board(c *fiber.Ctx) error {
	var stages []model.PipelineStageModel
	if err := ctrl.DB.Order("stage_position ASC").Find(&stages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao carregar o funil")
	}

	// escopo de líder: mesmas regras da listagem de contatos
	contactsQuery := ctrl.DB.Model(&contactModel.ContactModel{}).
		Where("contact_pipeline_stage_id IS NOT NULL")
	if !helper.IsAdmin(c) {
		callerID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		cellIDs := helper.GetLeaderCellIDs(c)
		if len(cellIDs) > 0 {
			contactsQuery = contactsQuery.Where("contact_cell_id IN ? OR contact_leader_id = ?", cellIDs, callerID)
		} else {
			contactsQuery = contactsQuery.Where("contact_leader_id = ?", callerID)
		}
	}

	var contacts []contactModel.ContactModel
	if err := contactsQuery.Order("contact_created_at ASC").Find(&contacts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao carregar contatos do funil")
	}

	byStage := make(map[uuid.UUID][]contactDTO.ContactResponse, len(stages))
	for i := range contacts {
		if contacts[i].ContactStageID == nil {
			continue
		}
		byStage[*contacts[i].ContactStageID] = append(byStage[*contacts[i].ContactStageID], *contactDTO.ToContactResponse(&contacts[i]))
	}

	board := make([]dto.BoardColumnResponse, 0, len(stages))
	for i := range stages {
		col := dto.BoardColumnResponse{
			Stage:    *dto.ToPipelineStageResponse(&stages[i]),
			Contacts: byStage[stages[i].StageID],
		}
		if col.Contacts == nil {
			col.Contacts = []contactDTO.ContactResponse{}
		}
		board = append(board, col)
	}

	return helper.JsonOK(c, "ok", board)
}

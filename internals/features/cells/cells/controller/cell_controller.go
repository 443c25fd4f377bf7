package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	contactDTO "videira_backend/internals/features/congregation/contacts/dto"

	"videira_backend/internals/features/cells/cells/dto"
	"videira_backend/internals/features/cells/cells/model"
	"videira_backend/internals/features/cells/cells/service"
	helper "videira_backend/internals/helpers"
)

type CellController struct {
	DB *gorm.DB
}

func NewCellController(db *gorm.DB) *CellController {
	return &CellController{DB: db}
}

// 🟢 POST /api/a/cells
func (ctrl *CellController) Create(c *fiber.Ctx) error {
	var req dto.CellRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	leaderID, ok := contactDTO.NormalizeSentinelUUID(req.CellLeaderID)
	if !ok {
		return helper.JsonValidationError(c, map[string][]string{
			"cell_leader_id": {"UUID inválido"},
		})
	}

	token, err := service.GenerateCellToken(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] Falha ao gerar token de célula: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar token da célula")
	}

	cell := model.CellModel{
		CellName:     req.CellName,
		CellLeaderID: leaderID,
		CellAddress:  contactDTO.NormalizeSentinel(req.CellAddress),
		CellToken:    token,
	}
	if err := ctrl.DB.Create(&cell).Error; err != nil {
		log.Printf("[ERROR] Falha ao criar célula: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar célula")
	}

	return helper.JsonCreated(c, "Célula criada", dto.ToCellResponse(&cell))
}

// 🟢 GET /api/u/cells
// Admin: todas; líder: as que lidera
func (ctrl *CellController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.CellModel{}).Order("cell_name ASC")
	if !helper.IsAdmin(c) {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		q = q.Where("cell_leader_id = ?", userID)
	}

	var cells []model.CellModel
	if err := q.Find(&cells).Error; err != nil {
		log.Printf("[ERROR] Falha ao listar células: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar células")
	}
	return helper.JsonOK(c, "ok", dto.ToCellResponseList(cells))
}

// 🟢 GET /api/u/cells/:id
func (ctrl *CellController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Célula ID inválido")
	}

	var cell model.CellModel
	if err := ctrl.DB.Where("cell_id = ?", id).First(&cell).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Célula não encontrada")
	}
	return helper.JsonOK(c, "ok", dto.ToCellResponse(&cell))
}

// 🟡 PATCH /api/a/cells/:id
func (ctrl *CellController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Célula ID inválido")
	}

	var cell model.CellModel
	if err := ctrl.DB.Where("cell_id = ?", id).First(&cell).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Célula não encontrada")
	}

	var req dto.CellUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}

	updates := map[string]interface{}{}
	if req.CellName != nil {
		updates["cell_name"] = *req.CellName
	}
	if req.CellLeaderID != nil {
		leaderID, ok := contactDTO.NormalizeSentinelUUID(req.CellLeaderID)
		if !ok {
			return helper.JsonValidationError(c, map[string][]string{
				"cell_leader_id": {"UUID inválido"},
			})
		}
		updates["cell_leader_id"] = leaderID
	}
	if req.CellAddress != nil {
		updates["cell_address"] = contactDTO.NormalizeSentinel(req.CellAddress)
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum campo para atualizar")
	}

	if err := ctrl.DB.Model(&cell).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar célula")
	}
	if err := ctrl.DB.Where("cell_id = ?", id).First(&cell).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar célula")
	}
	return helper.JsonUpdated(c, "Célula atualizada", dto.ToCellResponse(&cell))
}

// 🔴 DELETE /api/a/cells/:id
func (ctrl *CellController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Célula ID inválido")
	}

	if err := ctrl.DB.Where("cell_id = ?", id).Delete(&model.CellModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover célula")
	}
	return helper.JsonDeleted(c, "Célula removida", nil)
}

package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	contactDTO "videira_backend/internals/features/congregation/contacts/dto"
	"videira_backend/internals/features/congregation/ministries/dto"
	"videira_backend/internals/features/congregation/ministries/model"
	helper "videira_backend/internals/helpers"
)

type MinistryController struct {
	DB *gorm.DB
}

func NewMinistryController(db *gorm.DB) *MinistryController {
	return &MinistryController{DB: db}
}

func (ctrl *MinistryController) memberCount(id uuid.UUID) int64 {
	var count int64
	ctrl.DB.Model(&model.MinistryMemberModel{}).Where("ministry_id = ?", id).Count(&count)
	return count
}

// 🟢 POST /api/a/ministries
func (ctrl *MinistryController) Create(c *fiber.Ctx) error {
	var req dto.MinistryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	leaderID, ok := contactDTO.NormalizeSentinelUUID(req.MinistryLeaderID)
	if !ok {
		return helper.JsonValidationError(c, map[string][]string{
			"ministry_leader_id": {"UUID inválido"},
		})
	}

	ministry := model.MinistryModel{
		MinistryName:        strings.TrimSpace(req.MinistryName),
		MinistryDescription: contactDTO.NormalizeSentinel(req.MinistryDescription),
		MinistryLeaderID:    leaderID,
	}
	if err := ctrl.DB.Create(&ministry).Error; err != nil {
		log.Printf("[ERROR] Falha ao criar ministério: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar ministério")
	}
	return helper.JsonCreated(c, "Ministério criado", dto.ToMinistryResponse(&ministry, 0))
}

// 🟢 GET /api/u/ministries
func (ctrl *MinistryController) List(c *fiber.Ctx) error {
	var ministries []model.MinistryModel
	if err := ctrl.DB.Order("ministry_name ASC").Find(&ministries).Error; err != nil {
		log.Printf("[ERROR] Falha ao listar ministérios: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar ministérios")
	}

	result := make([]dto.MinistryResponse, 0, len(ministries))
	for i := range ministries {
		result = append(result, *dto.ToMinistryResponse(&ministries[i], ctrl.memberCount(ministries[i].MinistryID)))
	}
	return helper.JsonOK(c, "ok", result)
}

// 🟡 PATCH /api/a/ministries/:id
func (ctrl *MinistryController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ministério ID inválido")
	}

	var ministry model.MinistryModel
	if err := ctrl.DB.Where("ministry_id = ?", id).First(&ministry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Ministério não encontrado")
	}

	var req dto.MinistryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}

	updates := map[string]interface{}{}
	if req.MinistryName != nil {
		updates["ministry_name"] = strings.TrimSpace(*req.MinistryName)
	}
	if req.MinistryDescription != nil {
		updates["ministry_description"] = contactDTO.NormalizeSentinel(req.MinistryDescription)
	}
	if req.MinistryLeaderID != nil {
		leaderID, ok := contactDTO.NormalizeSentinelUUID(req.MinistryLeaderID)
		if !ok {
			return helper.JsonValidationError(c, map[string][]string{
				"ministry_leader_id": {"UUID inválido"},
			})
		}
		updates["ministry_leader_id"] = leaderID
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum campo para atualizar")
	}

	if err := ctrl.DB.Model(&ministry).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar ministério")
	}
	if err := ctrl.DB.Where("ministry_id = ?", id).First(&ministry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar ministério")
	}
	return helper.JsonUpdated(c, "Ministério atualizado", dto.ToMinistryResponse(&ministry, ctrl.memberCount(id)))
}

// 🔴 DELETE /api/a/ministries/:id — remove também os vínculos
func (ctrl *MinistryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ministério ID inválido")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ministry_id = ?", id).
			Delete(&model.MinistryMemberModel{}).Error; err != nil {
			return err
		}
		return tx.Where("ministry_id = ?", id).Delete(&model.MinistryModel{}).Error
	})
	if err != nil {
		log.Printf("[ERROR] Falha ao remover ministério: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover ministério")
	}
	return helper.JsonDeleted(c, "Ministério removido", nil)
}

// 🟢 POST /api/a/ministries/:id/members
func (ctrl *MinistryController) AddMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ministério ID inválido")
	}

	var ministry model.MinistryModel
	if err := ctrl.DB.Where("ministry_id = ?", id).First(&ministry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Ministério não encontrado")
	}

	var req dto.MinistryMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	contactID, _ := uuid.Parse(req.ContactID)
	role := "member"
	if req.MemberRole != nil && strings.TrimSpace(*req.MemberRole) != "" {
		role = strings.TrimSpace(*req.MemberRole)
	}

	member := model.MinistryMemberModel{
		MinistryID: id,
		ContactID:  contactID,
		MemberRole: role,
	}
	if err := ctrl.DB.Create(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Contato já faz parte deste ministério")
		}
		log.Printf("[ERROR] Falha ao vincular contato ao ministério: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao vincular contato")
	}
	return helper.JsonCreated(c, "Contato vinculado ao ministério", member)
}

// 🔴 DELETE /api/a/ministries/:id/members/:contactId
func (ctrl *MinistryController) RemoveMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ministério ID inválido")
	}
	contactID, err := uuid.Parse(c.Params("contactId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Contato ID inválido")
	}

	res := ctrl.DB.Where("ministry_id = ? AND contact_id = ?", id, contactID).
		Delete(&model.MinistryMemberModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover vínculo")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Vínculo não encontrado")
	}
	return helper.JsonDeleted(c, "Vínculo removido", nil)
}

// 🟢 GET /api/u/ministries/:id/members
func (ctrl *MinistryController) Roster(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ministério ID inválido")
	}

	var entries []dto.MinistryRosterEntry
	if err := ctrl.DB.Model(&model.MinistryMemberModel{}).
		Select("ministry_members.contact_id", "contacts.contact_name", "ministry_members.member_role").
		Joins("JOIN contacts ON contacts.contact_id = ministry_members.contact_id AND contacts.contact_deleted_at IS NULL").
		Where("ministry_members.ministry_id = ?", id).
		Order("contacts.contact_name ASC").
		Scan(&entries).Error; err != nil {
		log.Printf("[ERROR] Falha ao listar integrantes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar integrantes")
	}
	return helper.JsonOK(c, "ok", entries)
}

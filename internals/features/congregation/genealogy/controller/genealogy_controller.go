package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactModel "videira_backend/internals/features/congregation/contacts/model"
	"videira_backend/internals/features/congregation/genealogy"
	helper "videira_backend/internals/helpers"
)

type GenealogyController struct {
	DB *gorm.DB
}

func NewGenealogyController(db *gorm.DB) *GenealogyController {
	return &GenealogyController{DB: db}
}

// 🟢 GET /api/u/genealogy — floresta de indicações + estatísticas
// Admin enxerga toda a base; líder só o próprio escopo.
func (ctrl *GenealogyController) Get(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&contactModel.ContactModel{}).
		Select("contact_id", "contact_referred_by")

	if !helper.IsAdmin(c) {
		callerID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		cellIDs := helper.GetLeaderCellIDs(c)
		if len(cellIDs) > 0 {
			q = q.Where("contact_cell_id IN ? OR contact_leader_id = ?", cellIDs, callerID)
		} else {
			q = q.Where("contact_leader_id = ?", callerID)
		}
	}

	var contacts []contactModel.ContactModel
	if err := q.Find(&contacts).Error; err != nil {
		log.Printf("[ERROR] Falha ao carregar genealogia: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao carregar genealogia")
	}

	nodes := make([]genealogy.Node, 0, len(contacts))
	for i := range contacts {
		nodes = append(nodes, genealogy.Node{
			ID:         contacts[i].ContactID,
			ReferredBy: contacts[i].ContactReferredBy,
		})
	}

	return helper.JsonOK(c, "ok", genealogy.Build(nodes))
}

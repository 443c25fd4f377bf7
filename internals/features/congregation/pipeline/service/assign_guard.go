package service

import (
	"github.com/google/uuid"

	"videira_backend/internals/constants"
	contactModel "videira_backend/internals/features/congregation/contacts/model"
)

// CanAssignStage decide se o chamador pode mover o contato de etapa.
// Admin sempre pode; líder só quando o contato está no seu escopo —
// o mesmo filtro usado para montar a lista de contatos do líder
// (contato na célula liderada OU liderado diretamente pelo chamador).
func CanAssignStage(role string, callerID uuid.UUID, contact *contactModel.ContactModel, leaderCellIDs []uuid.UUID) bool {
	if role == constants.RoleAdmin {
		return true
	}
	if role != constants.RoleLeader {
		return false
	}
	if contact.ContactLeaderID != nil && *contact.ContactLeaderID == callerID {
		return true
	}
	if contact.ContactCellID != nil {
		for _, cellID := range leaderCellIDs {
			if cellID == *contact.ContactCellID {
				return true
			}
		}
	}
	return false
}

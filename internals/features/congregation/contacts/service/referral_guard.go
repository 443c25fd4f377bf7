package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"videira_backend/internals/features/congregation/contacts/model"
)

// Mesmo teto defensivo do builder de genealogia
const maxReferralHops = 10

// WouldCreateReferralCycle sobe a cadeia de referred_by a partir do novo pai;
// se alcançar o próprio contato em até maxReferralHops, o update fecharia um ciclo.
// getParent devolve o referred_by de um contato (nil = raiz).
func WouldCreateReferralCycle(contactID uuid.UUID, newParent *uuid.UUID, getParent func(uuid.UUID) (*uuid.UUID, error)) (bool, error) {
	if newParent == nil {
		return false, nil
	}
	if *newParent == contactID {
		return true, nil
	}

	current := newParent
	for hop := 0; hop < maxReferralHops && current != nil; hop++ {
		parent, err := getParent(*current)
		if err != nil {
			return false, err
		}
		if parent == nil {
			return false, nil
		}
		if *parent == contactID {
			return true, nil
		}
		current = parent
	}
	// estourou o teto sem achar raiz: trata como ciclo (dado já corrompido)
	return current != nil, nil
}

// WouldCreateReferralCycleDB é o binding de banco do guard acima
func WouldCreateReferralCycleDB(db *gorm.DB, contactID uuid.UUID, newParent *uuid.UUID) (bool, error) {
	return WouldCreateReferralCycle(contactID, newParent, func(id uuid.UUID) (*uuid.UUID, error) {
		var row model.ContactModel
		err := db.Select("contact_referred_by").
			Where("contact_id = ?", id).
			First(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil // pai apontando para registro removido: corta a cadeia
			}
			return nil, err
		}
		return row.ContactReferredBy, nil
	})
}

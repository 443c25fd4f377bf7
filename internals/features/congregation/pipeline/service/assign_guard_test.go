package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"videira_backend/internals/constants"
	contactModel "videira_backend/internals/features/congregation/contacts/model"
)

func TestCanAssignStage(t *testing.T) {
	caller := uuid.New()
	otherUser := uuid.New()
	myCell := uuid.New()
	otherCell := uuid.New()

	t.Run("admin move qualquer contato", func(t *testing.T) {
		contact := &contactModel.ContactModel{ContactLeaderID: &otherUser, ContactCellID: &otherCell}
		assert.True(t, CanAssignStage(constants.RoleAdmin, caller, contact, nil))
	})

	t.Run("líder move contato liderado diretamente", func(t *testing.T) {
		contact := &contactModel.ContactModel{ContactLeaderID: &caller}
		assert.True(t, CanAssignStage(constants.RoleLeader, caller, contact, nil))
	})

	t.Run("líder move contato da própria célula", func(t *testing.T) {
		contact := &contactModel.ContactModel{ContactCellID: &myCell}
		assert.True(t, CanAssignStage(constants.RoleLeader, caller, contact, []uuid.UUID{myCell}))
	})

	t.Run("líder não move contato fora do escopo", func(t *testing.T) {
		contact := &contactModel.ContactModel{ContactLeaderID: &otherUser, ContactCellID: &otherCell}
		assert.False(t, CanAssignStage(constants.RoleLeader, caller, contact, []uuid.UUID{myCell}))
	})

	t.Run("líder não move contato sem vínculo nenhum", func(t *testing.T) {
		contact := &contactModel.ContactModel{}
		assert.False(t, CanAssignStage(constants.RoleLeader, caller, contact, []uuid.UUID{myCell}))
	})

	t.Run("member nunca move", func(t *testing.T) {
		contact := &contactModel.ContactModel{ContactLeaderID: &caller}
		assert.False(t, CanAssignStage(constants.RoleMember, caller, contact, nil))
	})
}

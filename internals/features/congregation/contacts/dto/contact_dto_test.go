package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizeSentinel(t *testing.T) {
	t.Run("nil e vazio viram nil", func(t *testing.T) {
		assert.Nil(t, NormalizeSentinel(nil))
		assert.Nil(t, NormalizeSentinel(strPtr("")))
		assert.Nil(t, NormalizeSentinel(strPtr("   ")))
	})

	t.Run("sentinelas do front viram nil, inclusive com caixa diferente", func(t *testing.T) {
		for _, s := range []string{"no-cell", "no-leader", "no-stage", "no-referral", "no-city", "none", "sem-bairro", "No-Cell", "NONE"} {
			assert.Nil(t, NormalizeSentinel(strPtr(s)), "sentinela %q", s)
		}
	})

	t.Run("valor real passa com trim", func(t *testing.T) {
		got := NormalizeSentinel(strPtr("  Centro  "))
		require.NotNil(t, got)
		assert.Equal(t, "Centro", *got)
	})
}

func TestNormalizeSentinelUUID(t *testing.T) {
	id := uuid.New()

	got, ok := NormalizeSentinelUUID(strPtr(id.String()))
	require.True(t, ok)
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	got, ok = NormalizeSentinelUUID(strPtr("no-referral"))
	assert.True(t, ok)
	assert.Nil(t, got)

	_, ok = NormalizeSentinelUUID(strPtr("not-a-uuid"))
	assert.False(t, ok)
}

func TestBuildUpdates(t *testing.T) {
	cellID := uuid.New()
	leaderID := uuid.New()

	t.Run("não-admin: cell_id e leader_id são retidos em silêncio", func(t *testing.T) {
		req := ContactUpdateRequest{
			ContactName:     strPtr("Maria Souza"),
			ContactCellID:   strPtr(cellID.String()),
			ContactLeaderID: strPtr(leaderID.String()),
		}

		updates, _, _, fieldErrors := req.BuildUpdates(false)
		require.Nil(t, fieldErrors)

		// o nome passa, mas nada de vínculo de célula/líder e nada de erro
		assert.Equal(t, "Maria Souza", updates["contact_name"])
		assert.NotContains(t, updates, "contact_cell_id")
		assert.NotContains(t, updates, "contact_leader_id")
	})

	t.Run("admin: cell_id e leader_id aplicam", func(t *testing.T) {
		req := ContactUpdateRequest{
			ContactCellID:   strPtr(cellID.String()),
			ContactLeaderID: strPtr(leaderID.String()),
		}

		updates, _, _, fieldErrors := req.BuildUpdates(true)
		require.Nil(t, fieldErrors)
		assert.Equal(t, &cellID, updates["contact_cell_id"])
		assert.Equal(t, &leaderID, updates["contact_leader_id"])
	})

	t.Run("admin: sentinela no-cell limpa o vínculo", func(t *testing.T) {
		req := ContactUpdateRequest{ContactCellID: strPtr("no-cell")}

		updates, _, _, fieldErrors := req.BuildUpdates(true)
		require.Nil(t, fieldErrors)
		require.Contains(t, updates, "contact_cell_id")
		assert.Nil(t, updates["contact_cell_id"].(*uuid.UUID))
	})

	t.Run("referred_by sinaliza mudança para o guard de ciclo", func(t *testing.T) {
		parent := uuid.New()
		req := ContactUpdateRequest{ContactReferredBy: strPtr(parent.String())}

		updates, newParent, changed, fieldErrors := req.BuildUpdates(false)
		require.Nil(t, fieldErrors)
		assert.True(t, changed)
		require.NotNil(t, newParent)
		assert.Equal(t, parent, *newParent)
		assert.Contains(t, updates, "contact_referred_by")
	})

	t.Run("patch sem referred_by não dispara o guard", func(t *testing.T) {
		req := ContactUpdateRequest{ContactName: strPtr("João")}

		_, newParent, changed, fieldErrors := req.BuildUpdates(false)
		require.Nil(t, fieldErrors)
		assert.False(t, changed)
		assert.Nil(t, newParent)
	})

	t.Run("status inválido vira field error", func(t *testing.T) {
		req := ContactUpdateRequest{ContactStatus: strPtr("whatever")}

		updates, _, _, fieldErrors := req.BuildUpdates(true)
		assert.Nil(t, updates)
		require.Contains(t, fieldErrors, "contact_status")
	})

	t.Run("data de nascimento fora do formato vira field error", func(t *testing.T) {
		req := ContactUpdateRequest{ContactBirthDate: strPtr("01/02/1990")}

		_, _, _, fieldErrors := req.BuildUpdates(true)
		require.Contains(t, fieldErrors, "contact_birth_date")
	})

	t.Run("nome em branco não apaga o nome", func(t *testing.T) {
		req := ContactUpdateRequest{ContactName: strPtr("   ")}

		_, _, _, fieldErrors := req.BuildUpdates(true)
		require.Contains(t, fieldErrors, "contact_name")
	})
}

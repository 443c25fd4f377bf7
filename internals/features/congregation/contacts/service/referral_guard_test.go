package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cadeia estática id → pai para o guard puro
func chain(edges map[uuid.UUID]*uuid.UUID) func(uuid.UUID) (*uuid.UUID, error) {
	return func(id uuid.UUID) (*uuid.UUID, error) {
		return edges[id], nil
	}
}

func TestWouldCreateReferralCycle(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	t.Run("sem pai novo: nunca há ciclo", func(t *testing.T) {
		got, err := WouldCreateReferralCycle(a, nil, chain(nil))
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("auto-indicação é ciclo", func(t *testing.T) {
		got, err := WouldCreateReferralCycle(a, &a, chain(nil))
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("cadeia limpa: A indicado por B, B raiz", func(t *testing.T) {
		got, err := WouldCreateReferralCycle(a, &b, chain(map[uuid.UUID]*uuid.UUID{b: nil}))
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("ciclo indireto: A→B→C e C voltaria para A", func(t *testing.T) {
		// contato A recebendo pai C, sendo C→B→A
		edges := map[uuid.UUID]*uuid.UUID{
			c: &b,
			b: &a,
		}
		got, err := WouldCreateReferralCycle(a, &c, chain(edges))
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("cadeia cortada (pai removido) não é ciclo", func(t *testing.T) {
		edges := map[uuid.UUID]*uuid.UUID{c: &b} // b não resolve: nil
		got, err := WouldCreateReferralCycle(a, &c, chain(edges))
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("cadeia acima do teto sem raiz conta como ciclo", func(t *testing.T) {
		// anel entre b e c que nunca alcança a nem uma raiz
		edges := map[uuid.UUID]*uuid.UUID{
			b: &c,
			c: &b,
		}
		got, err := WouldCreateReferralCycle(a, &b, chain(edges))
		require.NoError(t, err)
		assert.True(t, got)
	})
}

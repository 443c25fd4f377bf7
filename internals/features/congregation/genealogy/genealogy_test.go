package genealogy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findNode(t *testing.T, report Report, id uuid.UUID) NodeReport {
	t.Helper()
	for _, n := range report.Nodes {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("nó %s ausente do relatório", id)
	return NodeReport{}
}

func TestBuild(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	t.Run("cadeia A→B→C: profundidades 0/1/2 e mesma raiz", func(t *testing.T) {
		report := Build([]Node{
			{ID: a},
			{ID: b, ReferredBy: &a},
			{ID: c, ReferredBy: &b},
		})

		na := findNode(t, report, a)
		nb := findNode(t, report, b)
		nc := findNode(t, report, c)

		assert.Equal(t, 0, na.Depth)
		assert.True(t, na.IsRoot)
		assert.Equal(t, 1, nb.Depth)
		assert.Equal(t, 2, nc.Depth)
		assert.Equal(t, a, nb.RootID)
		assert.Equal(t, a, nc.RootID)

		assert.Equal(t, 3, report.Total)
		assert.Equal(t, 3, report.Connected)
		assert.Equal(t, 2, report.MaxDepth)
		assert.Equal(t, 0, report.StandbyCount)
	})

	t.Run("raiz com filhos não é standby; isolado é", func(t *testing.T) {
		lone := uuid.New()
		report := Build([]Node{
			{ID: a},
			{ID: b, ReferredBy: &a},
			{ID: lone},
		})

		assert.False(t, findNode(t, report, a).Standby)
		assert.True(t, findNode(t, report, lone).Standby)
		assert.Equal(t, 1, report.StandbyCount)
		assert.Equal(t, 2, report.Connected)
	})

	t.Run("pai fora do conjunto conta como raiz local", func(t *testing.T) {
		outside := uuid.New()
		report := Build([]Node{
			{ID: a, ReferredBy: &outside},
		})

		na := findNode(t, report, a)
		assert.Equal(t, 1, na.Depth)
		assert.Equal(t, outside, na.RootID)
		assert.False(t, na.IsRoot)
	})

	t.Run("ciclo em dado corrompido para no teto sem travar", func(t *testing.T) {
		report := Build([]Node{
			{ID: a, ReferredBy: &b},
			{ID: b, ReferredBy: &a},
		})

		assert.Equal(t, MaxDepth, findNode(t, report, a).Depth)
		assert.Equal(t, MaxDepth, report.MaxDepth)
	})

	t.Run("entrada vazia", func(t *testing.T) {
		report := Build(nil)
		require.NotNil(t, report.Nodes)
		assert.Zero(t, report.Total)
		assert.Zero(t, report.MaxDepth)
	})

	t.Run("não muta a entrada", func(t *testing.T) {
		nodes := []Node{
			{ID: a},
			{ID: b, ReferredBy: &a},
		}
		_ = Build(nodes)
		assert.Nil(t, nodes[0].ReferredBy)
		require.NotNil(t, nodes[1].ReferredBy)
		assert.Equal(t, a, *nodes[1].ReferredBy)
	})
}

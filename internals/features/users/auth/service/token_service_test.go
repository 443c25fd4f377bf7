package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videira_backend/internals/configs"
	userModel "videira_backend/internals/features/users/user/model"
)

func TestBuildAccessClaims(t *testing.T) {
	u := &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "Pr. Carlos",
		Role:     "leader",
	}
	cellIDs := []string{uuid.NewString(), uuid.NewString()}
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	claims := buildAccessClaims(u, cellIDs, now)

	assert.Equal(t, u.ID.String(), claims["sub"])
	assert.Equal(t, "leader", claims["role"])
	assert.Equal(t, "Pr. Carlos", claims["user_name"])
	assert.Equal(t, cellIDs, claims["cell_ids"])
	assert.Equal(t, now.Unix(), claims["iat"])
	assert.Equal(t, now.Add(2*time.Hour).Unix(), claims["exp"])
}

func TestBuildRefreshClaims(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	claims := buildRefreshClaims(userID, now)

	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, now.Add(7*24*time.Hour).Unix(), claims["exp"])
}

func TestComputeRefreshHash(t *testing.T) {
	old := configs.JWTRefreshSecret
	configs.JWTRefreshSecret = "segredo-de-teste"
	t.Cleanup(func() { configs.JWTRefreshSecret = old })

	h1 := ComputeRefreshHash("token-abc")
	h2 := ComputeRefreshHash("token-abc")
	h3 := ComputeRefreshHash("token-xyz")

	// determinístico por token, hex de 32 bytes
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	require.Len(t, h1, 64)

	// trocar o secret troca o hash (hash antigo não vaza entre ambientes)
	configs.JWTRefreshSecret = "outro-segredo"
	assert.NotEqual(t, h1, ComputeRefreshHash("token-abc"))
}

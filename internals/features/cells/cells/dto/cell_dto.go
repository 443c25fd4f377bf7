package dto

import (
	"github.com/google/uuid"

	"videira_backend/internals/features/cells/cells/model"
)

type CellRequest struct {
	CellName     string  `json:"cell_name" validate:"required,min=2,max=120"`
	CellLeaderID *string `json:"cell_leader_id"`
	CellAddress  *string `json:"cell_address"`
}

type CellUpdateRequest struct {
	CellName     *string `json:"cell_name"`
	CellLeaderID *string `json:"cell_leader_id"`
	CellAddress  *string `json:"cell_address"`
}

type CellResponse struct {
	CellID       uuid.UUID  `json:"cell_id"`
	CellName     string     `json:"cell_name"`
	CellLeaderID *uuid.UUID `json:"cell_leader_id,omitempty"`
	CellAddress  *string    `json:"cell_address,omitempty"`
	CellToken    string     `json:"cell_token"`
	CreatedAt    string     `json:"created_at"`
}

func ToCellResponse(m *model.CellModel) *CellResponse {
	return &CellResponse{
		CellID:       m.CellID,
		CellName:     m.CellName,
		CellLeaderID: m.CellLeaderID,
		CellAddress:  m.CellAddress,
		CellToken:    m.CellToken,
		CreatedAt:    m.CellCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToCellResponseList(models []model.CellModel) []CellResponse {
	result := make([]CellResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToCellResponse(&models[i]))
	}
	return result
}

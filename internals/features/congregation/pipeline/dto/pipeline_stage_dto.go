package dto

import (
	"github.com/google/uuid"

	contactDTO "videira_backend/internals/features/congregation/contacts/dto"
	"videira_backend/internals/features/congregation/pipeline/model"
)

type PipelineStageRequest struct {
	StageName     string `json:"stage_name" validate:"required,min=2,max=120"`
	StageColor    string `json:"stage_color" validate:"omitempty,max=20"`
	StagePosition *int   `json:"stage_position"`
}

type PipelineStageUpdateRequest struct {
	StageName     *string `json:"stage_name"`
	StageColor    *string `json:"stage_color"`
	StagePosition *int    `json:"stage_position"`
}

type PipelineStageResponse struct {
	StageID       uuid.UUID `json:"stage_id"`
	StageName     string    `json:"stage_name"`
	StageColor    string    `json:"stage_color"`
	StagePosition int       `json:"stage_position"`
}

// Coluna do kanban: etapa + contatos atuais
type BoardColumnResponse struct {
	Stage    PipelineStageResponse        `json:"stage"`
	Contacts []contactDTO.ContactResponse `json:"contacts"`
}

func (r *PipelineStageRequest) ToModel() *model.PipelineStageModel {
	m := &model.PipelineStageModel{
		StageName: r.StageName,
	}
	if r.StageColor != "" {
		m.StageColor = r.StageColor
	}
	if r.StagePosition != nil {
		m.StagePosition = *r.StagePosition
	}
	return m
}

func ToPipelineStageResponse(m *model.PipelineStageModel) *PipelineStageResponse {
	return &PipelineStageResponse{
		StageID:       m.StageID,
		StageName:     m.StageName,
		StageColor:    m.StageColor,
		StagePosition: m.StagePosition,
	}
}

func ToPipelineStageResponseList(models []model.PipelineStageModel) []PipelineStageResponse {
	result := make([]PipelineStageResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToPipelineStageResponse(&models[i]))
	}
	return result
}

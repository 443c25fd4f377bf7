package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PipelineStageModel: etapa ordenada do funil de discipulado.
// A ordem total vem de stage_position (único entre etapas vivas).
type PipelineStageModel struct {
	StageID       uuid.UUID `gorm:"column:stage_id;type:uuid;default:gen_random_uuid();primaryKey" json:"stage_id"`
	StageName     string    `gorm:"column:stage_name;type:varchar(120);not null" json:"stage_name"`
	StageColor    string    `gorm:"column:stage_color;type:varchar(20);not null;default:'#888888'" json:"stage_color"`
	StagePosition int       `gorm:"column:stage_position;not null;index:idx_pipeline_stages_position" json:"stage_position"`

	StageCreatedAt time.Time      `gorm:"column:stage_created_at;type:timestamptz;autoCreateTime" json:"stage_created_at"`
	StageUpdatedAt time.Time      `gorm:"column:stage_updated_at;type:timestamptz;autoUpdateTime" json:"stage_updated_at"`
	StageDeletedAt gorm.DeletedAt `gorm:"column:stage_deleted_at;type:timestamptz;index" json:"stage_deleted_at,omitempty"`
}

func (PipelineStageModel) TableName() string {
	return "pipeline_stages"
}

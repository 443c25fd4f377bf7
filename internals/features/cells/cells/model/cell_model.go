package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CellModel: célula (pequeno grupo) com líder e endereço.
// cell_token identifica a célula na página pública de presença.
type CellModel struct {
	CellID       uuid.UUID  `gorm:"column:cell_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cell_id"`
	CellName     string     `gorm:"column:cell_name;type:varchar(120);not null" json:"cell_name"`
	CellLeaderID *uuid.UUID `gorm:"column:cell_leader_id;type:uuid;index:idx_cells_leader_id" json:"cell_leader_id,omitempty"`
	CellAddress  *string    `gorm:"column:cell_address;type:text" json:"cell_address,omitempty"`
	CellToken    string     `gorm:"column:cell_token;type:varchar(16);not null;uniqueIndex:ux_cells_token" json:"cell_token"`

	CellCreatedAt time.Time      `gorm:"column:cell_created_at;type:timestamptz;autoCreateTime" json:"cell_created_at"`
	CellUpdatedAt time.Time      `gorm:"column:cell_updated_at;type:timestamptz;autoUpdateTime" json:"cell_updated_at"`
	CellDeletedAt gorm.DeletedAt `gorm:"column:cell_deleted_at;type:timestamptz;index" json:"cell_deleted_at,omitempty"`
}

func (CellModel) TableName() string {
	return "cells"
}

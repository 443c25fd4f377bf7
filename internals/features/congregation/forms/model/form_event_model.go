package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormEventModel: variantes do formulário público de cadastro
// (campanhas, eventos especiais). event_key entra na URL.
type FormEventModel struct {
	EventID     uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventKey    string    `gorm:"column:event_key;type:varchar(80);not null;uniqueIndex:ux_form_events_key" json:"event_key"`
	EventTitle  string    `gorm:"column:event_title;type:varchar(200);not null" json:"event_title"`
	EventActive bool      `gorm:"column:event_active;not null;default:true" json:"event_active"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;type:timestamptz;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;type:timestamptz;index" json:"event_deleted_at,omitempty"`
}

func (FormEventModel) TableName() string {
	return "form_events"
}

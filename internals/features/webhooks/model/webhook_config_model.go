package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WebhookConfigModel: URL configurada pelo operador para receber eventos do domínio
type WebhookConfigModel struct {
	WebhookID    uuid.UUID `gorm:"column:webhook_id;type:uuid;default:gen_random_uuid();primaryKey" json:"webhook_id"`
	WebhookURL   string    `gorm:"column:webhook_url;type:text;not null" json:"webhook_url"`
	WebhookEvent string    `gorm:"column:webhook_event;type:varchar(40);not null;index:idx_webhook_configs_event" json:"webhook_event"`

	// Headers extras enviados em cada entrega (ex.: Authorization do destino)
	WebhookHeaders datatypes.JSONMap `gorm:"column:webhook_headers;type:jsonb" json:"webhook_headers,omitempty"`

	WebhookActive bool `gorm:"column:webhook_active;not null;default:true" json:"webhook_active"`

	WebhookCreatedAt time.Time      `gorm:"column:webhook_created_at;type:timestamptz;autoCreateTime" json:"webhook_created_at"`
	WebhookUpdatedAt time.Time      `gorm:"column:webhook_updated_at;type:timestamptz;autoUpdateTime" json:"webhook_updated_at"`
	WebhookDeletedAt gorm.DeletedAt `gorm:"column:webhook_deleted_at;type:timestamptz;index" json:"webhook_deleted_at,omitempty"`
}

func (WebhookConfigModel) TableName() string {
	return "webhook_configs"
}

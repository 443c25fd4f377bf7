package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AppSettingModel: chave/valor de configuração da aplicação.
// Chaves `qr:<keyword>` guardam o destino do redirect de QR code.
type AppSettingModel struct {
	SettingID    uuid.UUID         `gorm:"column:setting_id;type:uuid;default:gen_random_uuid();primaryKey" json:"setting_id"`
	SettingKey   string            `gorm:"column:setting_key;type:varchar(120);not null;uniqueIndex:ux_app_settings_key" json:"setting_key"`
	SettingValue datatypes.JSONMap `gorm:"column:setting_value;type:jsonb" json:"setting_value"`

	SettingCreatedAt time.Time `gorm:"column:setting_created_at;type:timestamptz;autoCreateTime" json:"setting_created_at"`
	SettingUpdatedAt time.Time `gorm:"column:setting_updated_at;type:timestamptz;autoUpdateTime" json:"setting_updated_at"`
}

func (AppSettingModel) TableName() string {
	return "app_settings"
}

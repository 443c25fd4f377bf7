package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoticeModel struct {
	NoticeID          uuid.UUID  `gorm:"column:notice_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notice_id"`
	NoticeTitle       string     `gorm:"column:notice_title;type:varchar(200);not null" json:"notice_title"`
	NoticeBody        string     `gorm:"column:notice_body;type:text;not null" json:"notice_body"`
	NoticeActive      bool       `gorm:"column:notice_active;not null;default:true" json:"notice_active"`
	NoticePublishedAt *time.Time `gorm:"column:notice_published_at;type:timestamptz" json:"notice_published_at,omitempty"`

	NoticeCreatedAt time.Time      `gorm:"column:notice_created_at;type:timestamptz;autoCreateTime" json:"notice_created_at"`
	NoticeUpdatedAt time.Time      `gorm:"column:notice_updated_at;type:timestamptz;autoUpdateTime" json:"notice_updated_at"`
	NoticeDeletedAt gorm.DeletedAt `gorm:"column:notice_deleted_at;type:timestamptz;index" json:"notice_deleted_at,omitempty"`
}

func (NoticeModel) TableName() string {
	return "notices"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactModel struct {
	ContactID           uuid.UUID  `gorm:"column:contact_id;type:uuid;default:gen_random_uuid();primaryKey" json:"contact_id"`
	ContactName         string     `gorm:"column:contact_name;type:varchar(255);not null" json:"contact_name"`
	ContactWhatsapp     string     `gorm:"column:contact_whatsapp;type:varchar(32);not null" json:"contact_whatsapp"`
	ContactEmail        *string    `gorm:"column:contact_email;type:varchar(255)" json:"contact_email,omitempty"`
	ContactCity         *string    `gorm:"column:contact_city;type:varchar(120)" json:"contact_city,omitempty"`
	ContactNeighborhood *string    `gorm:"column:contact_neighborhood;type:varchar(120)" json:"contact_neighborhood,omitempty"`
	ContactStatus       string     `gorm:"column:contact_status;type:varchar(20);not null;default:'pending'" json:"contact_status"`
	ContactCellID       *uuid.UUID `gorm:"column:contact_cell_id;type:uuid;index:idx_contacts_cell_id" json:"contact_cell_id,omitempty"`
	ContactStageID      *uuid.UUID `gorm:"column:contact_pipeline_stage_id;type:uuid;index:idx_contacts_stage_id" json:"contact_pipeline_stage_id,omitempty"`
	ContactReferredBy   *uuid.UUID `gorm:"column:contact_referred_by;type:uuid;index:idx_contacts_referred_by" json:"contact_referred_by,omitempty"`
	ContactLeaderID     *uuid.UUID `gorm:"column:contact_leader_id;type:uuid;index:idx_contacts_leader_id" json:"contact_leader_id,omitempty"`

	// Código de check-in: único entre todos os contatos quando emitido
	ContactAttendanceCode *string `gorm:"column:contact_attendance_code;type:varchar(12);uniqueIndex:ux_contacts_attendance_code" json:"contact_attendance_code,omitempty"`

	ContactEncounterWithGod bool       `gorm:"column:contact_encounter_with_god;not null;default:false" json:"contact_encounter_with_god"`
	ContactBaptized         bool       `gorm:"column:contact_baptized;not null;default:false" json:"contact_baptized"`
	ContactFounder          bool       `gorm:"column:contact_founder;not null;default:false" json:"contact_founder"`
	ContactBirthDate        *time.Time `gorm:"column:contact_birth_date;type:date" json:"contact_birth_date,omitempty"`
	ContactPhotoURL         *string    `gorm:"column:contact_photo_url;type:text" json:"contact_photo_url,omitempty"`

	ContactCreatedAt time.Time      `gorm:"column:contact_created_at;type:timestamptz;autoCreateTime" json:"contact_created_at"`
	ContactUpdatedAt time.Time      `gorm:"column:contact_updated_at;type:timestamptz;autoUpdateTime" json:"contact_updated_at"`
	ContactDeletedAt gorm.DeletedAt `gorm:"column:contact_deleted_at;type:timestamptz;index" json:"contact_deleted_at,omitempty"`
}

func (ContactModel) TableName() string {
	return "contacts"
}

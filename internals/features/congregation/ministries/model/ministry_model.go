package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MinistryModel struct {
	MinistryID          uuid.UUID  `gorm:"column:ministry_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ministry_id"`
	MinistryName        string     `gorm:"column:ministry_name;type:varchar(120);not null" json:"ministry_name"`
	MinistryDescription *string    `gorm:"column:ministry_description;type:text" json:"ministry_description,omitempty"`
	MinistryLeaderID    *uuid.UUID `gorm:"column:ministry_leader_id;type:uuid;index:idx_ministries_leader_id" json:"ministry_leader_id,omitempty"`

	MinistryCreatedAt time.Time      `gorm:"column:ministry_created_at;type:timestamptz;autoCreateTime" json:"ministry_created_at"`
	MinistryUpdatedAt time.Time      `gorm:"column:ministry_updated_at;type:timestamptz;autoUpdateTime" json:"ministry_updated_at"`
	MinistryDeletedAt gorm.DeletedAt `gorm:"column:ministry_deleted_at;type:timestamptz;index" json:"ministry_deleted_at,omitempty"`
}

func (MinistryModel) TableName() string {
	return "ministries"
}

// MinistryMemberModel: vínculo contato ↔ ministério.
// A unique composta impede vínculo duplicado.
type MinistryMemberModel struct {
	MinistryMemberID uuid.UUID `gorm:"column:ministry_member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ministry_member_id"`
	MinistryID       uuid.UUID `gorm:"column:ministry_id;type:uuid;not null;uniqueIndex:ux_ministry_members" json:"ministry_id"`
	ContactID        uuid.UUID `gorm:"column:contact_id;type:uuid;not null;uniqueIndex:ux_ministry_members" json:"contact_id"`
	MemberRole       string    `gorm:"column:member_role;type:varchar(40);not null;default:'member'" json:"member_role"`

	MemberCreatedAt time.Time `gorm:"column:member_created_at;type:timestamptz;autoCreateTime" json:"member_created_at"`
}

func (MinistryMemberModel) TableName() string {
	return "ministry_members"
}

package dto

import (
	"github.com/google/uuid"

	"videira_backend/internals/features/congregation/ministries/model"
)

type MinistryRequest struct {
	MinistryName        string  `json:"ministry_name" validate:"required,min=2,max=120"`
	MinistryDescription *string `json:"ministry_description"`
	MinistryLeaderID    *string `json:"ministry_leader_id"`
}

type MinistryUpdateRequest struct {
	MinistryName        *string `json:"ministry_name"`
	MinistryDescription *string `json:"ministry_description"`
	MinistryLeaderID    *string `json:"ministry_leader_id"`
}

type MinistryMemberRequest struct {
	ContactID  string  `json:"contact_id" validate:"required,uuid"`
	MemberRole *string `json:"member_role"`
}

type MinistryResponse struct {
	MinistryID          uuid.UUID  `json:"ministry_id"`
	MinistryName        string     `json:"ministry_name"`
	MinistryDescription *string    `json:"ministry_description,omitempty"`
	MinistryLeaderID    *uuid.UUID `json:"ministry_leader_id,omitempty"`
	MemberCount         int64      `json:"member_count"`
}

// MinistryRosterEntry: integrante com os dados básicos do contato
type MinistryRosterEntry struct {
	ContactID   uuid.UUID `json:"contact_id"`
	ContactName string    `json:"contact_name"`
	MemberRole  string    `json:"member_role"`
}

func ToMinistryResponse(m *model.MinistryModel, memberCount int64) *MinistryResponse {
	return &MinistryResponse{
		MinistryID:          m.MinistryID,
		MinistryName:        m.MinistryName,
		MinistryDescription: m.MinistryDescription,
		MinistryLeaderID:    m.MinistryLeaderID,
		MemberCount:         memberCount,
	}
}

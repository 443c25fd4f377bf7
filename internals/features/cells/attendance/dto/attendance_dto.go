package dto

import (
	"time"

	"github.com/google/uuid"

	"videira_backend/internals/features/cells/attendance/model"
)

type MarkAttendanceRequest struct {
	ContactID string `json:"contact_id" validate:"required,uuid"`
	CellID    string `json:"cell_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required"`
	Present   *bool  `json:"present"`
}

type AddVisitorRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=255"`
	Whatsapp *string `json:"whatsapp"`
	CellID   string  `json:"cell_id" validate:"required,uuid"`
	Date     string  `json:"date" validate:"required"`
}

type AttendanceResponse struct {
	AttendanceID uuid.UUID `json:"attendance_id"`
	ContactID    uuid.UUID `json:"contact_id"`
	CellID       uuid.UUID `json:"cell_id"`
	Date         string    `json:"date"`
	Present      bool      `json:"present"`
	Visitor      bool      `json:"visitor"`
}

// RosterEntryResponse: linha da chamada (contato + presença do dia, se houver)
type RosterEntryResponse struct {
	ContactID   uuid.UUID `json:"contact_id"`
	ContactName string    `json:"contact_name"`
	Present     *bool     `json:"present,omitempty"`
	Visitor     bool      `json:"visitor"`
}

func ToAttendanceResponse(m *model.AttendanceModel) *AttendanceResponse {
	return &AttendanceResponse{
		AttendanceID: m.AttendanceID,
		ContactID:    m.AttendanceContactID,
		CellID:       m.AttendanceCellID,
		Date:         m.AttendanceDate.Format("2006-01-02"),
		Present:      m.AttendancePresent,
		Visitor:      m.AttendanceVisitor,
	}
}

// ParseAttendanceDate aceita apenas YYYY-MM-DD
func ParseAttendanceDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

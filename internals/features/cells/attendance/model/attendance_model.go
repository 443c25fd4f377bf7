package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceModel: presença de um contato numa célula em uma data.
// A unique composta garante no máximo um registro por (contato, célula, data);
// marcações repetidas convergem via upsert.
type AttendanceModel struct {
	AttendanceID        uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceContactID uuid.UUID `gorm:"column:attendance_contact_id;type:uuid;not null;uniqueIndex:ux_attendance_contact_cell_date" json:"attendance_contact_id"`
	AttendanceCellID    uuid.UUID `gorm:"column:attendance_cell_id;type:uuid;not null;uniqueIndex:ux_attendance_contact_cell_date" json:"attendance_cell_id"`
	AttendanceDate      time.Time `gorm:"column:attendance_date;type:date;not null;uniqueIndex:ux_attendance_contact_cell_date" json:"attendance_date"`
	// sem default no banco: o flag vai sempre explícito no INSERT,
	// senão um "desmarcar" na primeira gravação viraria presença
	AttendancePresent   bool      `gorm:"column:attendance_present;not null" json:"attendance_present"`
	AttendanceVisitor   bool      `gorm:"column:attendance_visitor;not null;default:false" json:"attendance_visitor"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;type:timestamptz;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;type:timestamptz;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

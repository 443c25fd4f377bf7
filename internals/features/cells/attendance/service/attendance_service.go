package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"videira_backend/internals/constants"
	"videira_backend/internals/features/cells/attendance/model"
	contactModel "videira_backend/internals/features/congregation/contacts/model"
	contactService "videira_backend/internals/features/congregation/contacts/service"
)

// markConflict: a chave composta decide o conflito; só o flag e o
// updated_at mudam na remarcação.
func markConflict(present bool) clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_contact_id"},
			{Name: "attendance_cell_id"},
			{Name: "attendance_date"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"attendance_present":    present,
			"attendance_updated_at": time.Now(),
		}),
	}
}

// MarkPresent grava/atualiza a presença de forma idempotente:
// ON CONFLICT na unique (contato, célula, data) só ajusta o flag,
// então remarcações concorrentes nunca duplicam a linha.
func MarkPresent(db *gorm.DB, contactID, cellID uuid.UUID, date time.Time, present, visitor bool) (*model.AttendanceModel, error) {
	att := model.AttendanceModel{
		AttendanceContactID: contactID,
		AttendanceCellID:    cellID,
		AttendanceDate:      date,
		AttendancePresent:   present,
		AttendanceVisitor:   visitor,
	}

	if err := db.Clauses(markConflict(present)).Create(&att).Error; err != nil {
		return nil, err
	}

	// Recarrega: no caminho DO UPDATE o GORM não preenche a PK existente
	if err := db.Where(
		"attendance_contact_id = ? AND attendance_cell_id = ? AND attendance_date = ?",
		contactID, cellID, date,
	).First(&att).Error; err != nil {
		return nil, err
	}
	return &att, nil
}

// AddVisitor cria o contato visitante e a presença do dia em UMA transação:
// ou a pessoa aparece na base E na chamada, ou em lugar nenhum.
func AddVisitor(db *gorm.DB, name string, whatsapp *string, cellID uuid.UUID, date time.Time) (*contactModel.ContactModel, *model.AttendanceModel, error) {
	var contact contactModel.ContactModel
	var att model.AttendanceModel

	err := db.Transaction(func(tx *gorm.DB) error {
		code, err := contactService.GenerateAttendanceCodeDB(tx)
		if err != nil {
			return err
		}

		wa := ""
		if whatsapp != nil {
			wa = *whatsapp
		}
		contact = contactModel.ContactModel{
			ContactName:           name,
			ContactWhatsapp:       wa,
			ContactStatus:         constants.ContactStatusVisitor,
			ContactCellID:         &cellID,
			ContactAttendanceCode: &code,
		}
		if err := tx.Create(&contact).Error; err != nil {
			return err
		}

		att = model.AttendanceModel{
			AttendanceContactID: contact.ContactID,
			AttendanceCellID:    cellID,
			AttendanceDate:      date,
			AttendancePresent:   true,
			AttendanceVisitor:   true,
		}
		return tx.Create(&att).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &contact, &att, nil
}

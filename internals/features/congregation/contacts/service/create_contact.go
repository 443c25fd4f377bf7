package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"videira_backend/internals/constants"
	"videira_backend/internals/features/congregation/contacts/dto"
	"videira_backend/internals/features/congregation/contacts/model"
	webhookService "videira_backend/internals/features/webhooks/service"
)

// seam para os testes interceptarem o disparo assíncrono
var dispatch = webhookService.Dispatch

// isCodeCollision: a checagem prévia não elimina a corrida entre gerar
// e gravar; duas criações simultâneas podem sortear o mesmo código e só
// a unique do banco segura a segunda.
func isCodeCollision(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "ux_contacts_attendance_code") ||
		strings.Contains(msg, "contact_attendance_code")
}

// CreateContact materializa um cadastro (painel ou formulário público):
// status inicial, código de presença único e webhook new_contact.
func CreateContact(db *gorm.DB, req *dto.ContactCreateRequest) (*model.ContactModel, map[string][]string, error) {
	fieldErrors := map[string][]string{}

	name := strings.TrimSpace(req.ContactName)
	whatsapp := strings.TrimSpace(req.ContactWhatsapp)
	if name == "" {
		fieldErrors["contact_name"] = append(fieldErrors["contact_name"], "campo obrigatório")
	}
	if whatsapp == "" {
		fieldErrors["contact_whatsapp"] = append(fieldErrors["contact_whatsapp"], "campo obrigatório")
	}

	// bairro é obrigatório, mas a sentinela "sem-bairro" vale como "sem bairro" → NULL
	if req.ContactNeighborhood == nil || strings.TrimSpace(*req.ContactNeighborhood) == "" {
		fieldErrors["contact_neighborhood"] = append(fieldErrors["contact_neighborhood"], "campo obrigatório")
	}

	var birthDate *time.Time
	if d := dto.NormalizeSentinel(req.ContactBirthDate); d != nil {
		parsed, err := time.Parse("2006-01-02", *d)
		if err != nil {
			fieldErrors["contact_birth_date"] = append(fieldErrors["contact_birth_date"], "use o formato YYYY-MM-DD")
		} else {
			birthDate = &parsed
		}
	}

	referredBy, ok := dto.NormalizeSentinelUUID(req.ContactReferredBy)
	if !ok {
		fieldErrors["contact_referred_by"] = append(fieldErrors["contact_referred_by"], "UUID inválido")
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	var contact model.ContactModel
	for attempt := 0; ; attempt++ {
		code, err := GenerateAttendanceCodeDB(db)
		if err != nil {
			return nil, nil, err
		}

		contact = model.ContactModel{
			ContactName:           name,
			ContactWhatsapp:       whatsapp,
			ContactEmail:          dto.NormalizeSentinel(req.ContactEmail),
			ContactCity:           dto.NormalizeSentinel(req.ContactCity),
			ContactNeighborhood:   dto.NormalizeSentinel(req.ContactNeighborhood),
			ContactStatus:         constants.ContactStatusPending,
			ContactReferredBy:     referredBy,
			ContactAttendanceCode: &code,
			ContactBirthDate:      birthDate,
		}

		err = db.Create(&contact).Error
		if err == nil {
			break
		}
		if attempt == 0 && isCodeCollision(err) {
			// perdeu a corrida pelo código: sorteia outro e tenta de novo
			continue
		}
		return nil, nil, err
	}

	// best-effort: a resposta do cadastro não espera as entregas
	go dispatch(db, constants.WebhookEventNewContact, map[string]any{
		"contact_id": contact.ContactID.String(),
		"name":       contact.ContactName,
		"whatsapp":   contact.ContactWhatsapp,
		"status":     contact.ContactStatus,
	})

	return &contact, nil, nil
}

package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"videira_backend/internals/constants"
	"videira_backend/internals/features/congregation/contacts/model"
)

// Sentinelas que o front histórico usava no lugar de null.
// A normalização mora SÓ aqui: handler nenhum deve repetir esse mapeamento.
var sentinelValues = map[string]struct{}{
	"no-cell":     {},
	"no-leader":   {},
	"no-stage":    {},
	"no-referral": {},
	"no-city":     {},
	"none":        {},
	"sem-bairro":  {},
}

// NormalizeSentinel devolve nil para valor vazio ou sentinela
func NormalizeSentinel(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	if _, isSentinel := sentinelValues[strings.ToLower(s)]; isSentinel {
		return nil
	}
	return &s
}

// NormalizeSentinelUUID: idem, mas parseando para uuid (campos de FK)
func NormalizeSentinelUUID(v *string) (*uuid.UUID, bool) {
	s := NormalizeSentinel(v)
	if s == nil {
		return nil, true
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// 🔹 Request de criação (painel admin e formulário público)
type ContactCreateRequest struct {
	ContactName         string  `json:"contact_name" validate:"required,min=2,max=255"`
	ContactWhatsapp     string  `json:"contact_whatsapp" validate:"required,min=8,max=32"`
	ContactEmail        *string `json:"contact_email" validate:"omitempty,email"`
	ContactCity         *string `json:"contact_city"`
	ContactNeighborhood *string `json:"contact_neighborhood" validate:"required"`
	ContactBirthDate    *string `json:"contact_birth_date"` // YYYY-MM-DD
	ContactReferredBy   *string `json:"contact_referred_by"`
}

// 🔹 Request de update parcial (PATCH)
type ContactUpdateRequest struct {
	ContactName             *string `json:"contact_name"`
	ContactWhatsapp         *string `json:"contact_whatsapp"`
	ContactEmail            *string `json:"contact_email"`
	ContactCity             *string `json:"contact_city"`
	ContactNeighborhood     *string `json:"contact_neighborhood"`
	ContactStatus           *string `json:"contact_status"`
	ContactCellID           *string `json:"contact_cell_id"`
	ContactStageID          *string `json:"contact_pipeline_stage_id"`
	ContactReferredBy       *string `json:"contact_referred_by"`
	ContactLeaderID         *string `json:"contact_leader_id"`
	ContactEncounterWithGod *bool   `json:"contact_encounter_with_god"`
	ContactBaptized         *bool   `json:"contact_baptized"`
	ContactFounder          *bool   `json:"contact_founder"`
	ContactBirthDate        *string `json:"contact_birth_date"`
}

// BuildUpdates converte o PATCH em um map de colunas.
// Regra de autorização do lado do servidor: quem não é admin NUNCA altera
// contact_cell_id nem contact_leader_id — os campos são retidos em silêncio.
// Retorna também o novo referred_by (se veio no patch) para o guard de ciclo.
func (r *ContactUpdateRequest) BuildUpdates(isAdmin bool) (map[string]interface{}, *uuid.UUID, bool, map[string][]string) {
	updates := map[string]interface{}{}
	fieldErrors := map[string][]string{}

	if r.ContactName != nil {
		if strings.TrimSpace(*r.ContactName) == "" {
			fieldErrors["contact_name"] = append(fieldErrors["contact_name"], "campo obrigatório")
		} else {
			updates["contact_name"] = strings.TrimSpace(*r.ContactName)
		}
	}
	if r.ContactWhatsapp != nil {
		if strings.TrimSpace(*r.ContactWhatsapp) == "" {
			fieldErrors["contact_whatsapp"] = append(fieldErrors["contact_whatsapp"], "campo obrigatório")
		} else {
			updates["contact_whatsapp"] = strings.TrimSpace(*r.ContactWhatsapp)
		}
	}
	if r.ContactEmail != nil {
		updates["contact_email"] = NormalizeSentinel(r.ContactEmail)
	}
	if r.ContactCity != nil {
		updates["contact_city"] = NormalizeSentinel(r.ContactCity)
	}
	if r.ContactNeighborhood != nil {
		updates["contact_neighborhood"] = NormalizeSentinel(r.ContactNeighborhood)
	}
	if r.ContactStatus != nil {
		status := strings.ToLower(strings.TrimSpace(*r.ContactStatus))
		valid := false
		for _, s := range constants.ContactStatuses {
			if s == status {
				valid = true
				break
			}
		}
		if !valid {
			fieldErrors["contact_status"] = append(fieldErrors["contact_status"], "status inválido")
		} else {
			updates["contact_status"] = status
		}
	}
	if r.ContactStageID != nil {
		if id, ok := NormalizeSentinelUUID(r.ContactStageID); ok {
			updates["contact_pipeline_stage_id"] = id
		} else {
			fieldErrors["contact_pipeline_stage_id"] = append(fieldErrors["contact_pipeline_stage_id"], "UUID inválido")
		}
	}

	var newReferredBy *uuid.UUID
	referredByChanged := false
	if r.ContactReferredBy != nil {
		if id, ok := NormalizeSentinelUUID(r.ContactReferredBy); ok {
			updates["contact_referred_by"] = id
			newReferredBy = id
			referredByChanged = true
		} else {
			fieldErrors["contact_referred_by"] = append(fieldErrors["contact_referred_by"], "UUID inválido")
		}
	}

	// Campos gated por capability: retidos em silêncio para não-admin
	if isAdmin {
		if r.ContactCellID != nil {
			if id, ok := NormalizeSentinelUUID(r.ContactCellID); ok {
				updates["contact_cell_id"] = id
			} else {
				fieldErrors["contact_cell_id"] = append(fieldErrors["contact_cell_id"], "UUID inválido")
			}
		}
		if r.ContactLeaderID != nil {
			if id, ok := NormalizeSentinelUUID(r.ContactLeaderID); ok {
				updates["contact_leader_id"] = id
			} else {
				fieldErrors["contact_leader_id"] = append(fieldErrors["contact_leader_id"], "UUID inválido")
			}
		}
	}

	if r.ContactEncounterWithGod != nil {
		updates["contact_encounter_with_god"] = *r.ContactEncounterWithGod
	}
	if r.ContactBaptized != nil {
		updates["contact_baptized"] = *r.ContactBaptized
	}
	if r.ContactFounder != nil {
		updates["contact_founder"] = *r.ContactFounder
	}
	if r.ContactBirthDate != nil {
		if d := NormalizeSentinel(r.ContactBirthDate); d == nil {
			updates["contact_birth_date"] = nil
		} else if parsed, err := time.Parse("2006-01-02", *d); err == nil {
			updates["contact_birth_date"] = parsed
		} else {
			fieldErrors["contact_birth_date"] = append(fieldErrors["contact_birth_date"], "use o formato YYYY-MM-DD")
		}
	}

	if len(fieldErrors) > 0 {
		return nil, nil, false, fieldErrors
	}
	return updates, newReferredBy, referredByChanged, nil
}

// 🔹 Response
type ContactResponse struct {
	ContactID               uuid.UUID  `json:"contact_id"`
	ContactName             string     `json:"contact_name"`
	ContactWhatsapp         string     `json:"contact_whatsapp"`
	ContactEmail            *string    `json:"contact_email,omitempty"`
	ContactCity             *string    `json:"contact_city,omitempty"`
	ContactNeighborhood     *string    `json:"contact_neighborhood,omitempty"`
	ContactStatus           string     `json:"contact_status"`
	ContactCellID           *uuid.UUID `json:"contact_cell_id,omitempty"`
	ContactStageID          *uuid.UUID `json:"contact_pipeline_stage_id,omitempty"`
	ContactReferredBy       *uuid.UUID `json:"contact_referred_by,omitempty"`
	ContactLeaderID         *uuid.UUID `json:"contact_leader_id,omitempty"`
	ContactAttendanceCode   *string    `json:"contact_attendance_code,omitempty"`
	ContactEncounterWithGod bool       `json:"contact_encounter_with_god"`
	ContactBaptized         bool       `json:"contact_baptized"`
	ContactFounder          bool       `json:"contact_founder"`
	ContactBirthDate        *string    `json:"contact_birth_date,omitempty"`
	ContactPhotoURL         *string    `json:"contact_photo_url,omitempty"`
	ContactCreatedAt        string     `json:"contact_created_at"`
}

func ToContactResponse(m *model.ContactModel) *ContactResponse {
	resp := &ContactResponse{
		ContactID:               m.ContactID,
		ContactName:             m.ContactName,
		ContactWhatsapp:         m.ContactWhatsapp,
		ContactEmail:            m.ContactEmail,
		ContactCity:             m.ContactCity,
		ContactNeighborhood:     m.ContactNeighborhood,
		ContactStatus:           m.ContactStatus,
		ContactCellID:           m.ContactCellID,
		ContactStageID:          m.ContactStageID,
		ContactReferredBy:       m.ContactReferredBy,
		ContactLeaderID:         m.ContactLeaderID,
		ContactAttendanceCode:   m.ContactAttendanceCode,
		ContactEncounterWithGod: m.ContactEncounterWithGod,
		ContactBaptized:         m.ContactBaptized,
		ContactFounder:          m.ContactFounder,
		ContactPhotoURL:         m.ContactPhotoURL,
		ContactCreatedAt:        m.ContactCreatedAt.Format("2006-01-02 15:04:05"),
	}
	if m.ContactBirthDate != nil {
		d := m.ContactBirthDate.Format("2006-01-02")
		resp.ContactBirthDate = &d
	}
	return resp
}

func ToContactResponseList(models []model.ContactModel) []ContactResponse {
	result := make([]ContactResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToContactResponse(&models[i]))
	}
	return result
}

package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"videira_backend/internals/features/webhooks/model"
)

type WebhookConfigRequest struct {
	WebhookURL     string            `json:"webhook_url" validate:"required,url"`
	WebhookEvent   string            `json:"webhook_event" validate:"required,oneof=new_contact birthday"`
	WebhookHeaders map[string]string `json:"webhook_headers"`
	WebhookActive  *bool             `json:"webhook_active"`
}

type WebhookConfigResponse struct {
	WebhookID      uuid.UUID         `json:"webhook_id"`
	WebhookURL     string            `json:"webhook_url"`
	WebhookEvent   string            `json:"webhook_event"`
	WebhookHeaders datatypes.JSONMap `json:"webhook_headers,omitempty"`
	WebhookActive  bool              `json:"webhook_active"`
	CreatedAt      string            `json:"created_at"`
}

func (r *WebhookConfigRequest) ToModel() *model.WebhookConfigModel {
	m := &model.WebhookConfigModel{
		WebhookURL:   r.WebhookURL,
		WebhookEvent: r.WebhookEvent,
	}
	if len(r.WebhookHeaders) > 0 {
		headers := datatypes.JSONMap{}
		for k, v := range r.WebhookHeaders {
			headers[k] = v
		}
		m.WebhookHeaders = headers
	}
	if r.WebhookActive != nil {
		m.WebhookActive = *r.WebhookActive
	} else {
		m.WebhookActive = true
	}
	return m
}

func ToWebhookConfigResponse(m *model.WebhookConfigModel) *WebhookConfigResponse {
	return &WebhookConfigResponse{
		WebhookID:      m.WebhookID,
		WebhookURL:     m.WebhookURL,
		WebhookEvent:   m.WebhookEvent,
		WebhookHeaders: m.WebhookHeaders,
		WebhookActive:  m.WebhookActive,
		CreatedAt:      m.WebhookCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToWebhookConfigResponseList(models []model.WebhookConfigModel) []WebhookConfigResponse {
	result := make([]WebhookConfigResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToWebhookConfigResponse(&models[i]))
	}
	return result
}

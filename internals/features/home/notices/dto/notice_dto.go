package dto

import (
	"time"

	"github.com/google/uuid"

	"videira_backend/internals/features/home/notices/model"
)

type NoticeRequest struct {
	NoticeTitle  string `json:"notice_title" validate:"required,min=2,max=200"`
	NoticeBody   string `json:"notice_body" validate:"required"`
	NoticeActive *bool  `json:"notice_active"`
}

type NoticeUpdateRequest struct {
	NoticeTitle  *string `json:"notice_title"`
	NoticeBody   *string `json:"notice_body"`
	NoticeActive *bool   `json:"notice_active"`
}

type NoticeResponse struct {
	NoticeID     uuid.UUID `json:"notice_id"`
	NoticeTitle  string    `json:"notice_title"`
	NoticeBody   string    `json:"notice_body"`
	NoticeActive bool      `json:"notice_active"`
	PublishedAt  string    `json:"published_at,omitempty"`
}

func ToNoticeResponse(m *model.NoticeModel) *NoticeResponse {
	resp := &NoticeResponse{
		NoticeID:     m.NoticeID,
		NoticeTitle:  m.NoticeTitle,
		NoticeBody:   m.NoticeBody,
		NoticeActive: m.NoticeActive,
	}
	if m.NoticePublishedAt != nil {
		resp.PublishedAt = m.NoticePublishedAt.Format(time.RFC3339)
	}
	return resp
}

func ToNoticeResponseList(models []model.NoticeModel) []NoticeResponse {
	result := make([]NoticeResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToNoticeResponse(&models[i]))
	}
	return result
}

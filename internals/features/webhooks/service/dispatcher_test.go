package service

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"videira_backend/internals/features/webhooks/model"
)

type capturedRequest struct {
	body    map[string]any
	headers http.Header
}

// servidor de destino que guarda o que recebeu
func newTargetServer(t *testing.T, status int) (*httptest.Server, func() []capturedRequest) {
	t.Helper()
	var mu sync.Mutex
	var captured []capturedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))

		mu.Lock()
		captured = append(captured, capturedRequest{body: body, headers: r.Header.Clone()})
		mu.Unlock()

		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []capturedRequest {
		mu.Lock()
		defer mu.Unlock()
		out := make([]capturedRequest, len(captured))
		copy(out, captured)
		return out
	}
}

func TestDeliverAll(t *testing.T) {
	t.Run("fan-out entrega para todas as configs com payload mesclado", func(t *testing.T) {
		srvA, gotA := newTargetServer(t, http.StatusOK)
		srvB, gotB := newTargetServer(t, http.StatusNoContent)

		configs := []model.WebhookConfigModel{
			{WebhookURL: srvA.URL, WebhookEvent: "new_contact", WebhookActive: true},
			{WebhookURL: srvB.URL, WebhookEvent: "new_contact", WebhookActive: true},
		}

		DeliverAll(configs, "new_contact", map[string]any{
			"contact_id": "abc-123",
			"name":       "Maria",
		})

		reqsA := gotA()
		reqsB := gotB()
		require.Len(t, reqsA, 1)
		require.Len(t, reqsB, 1)

		for _, req := range []capturedRequest{reqsA[0], reqsB[0]} {
			assert.Equal(t, "new_contact", req.body["event"])
			assert.Equal(t, "abc-123", req.body["contact_id"])
			assert.Equal(t, "Maria", req.body["name"])
			assert.Equal(t, "application/json", req.headers.Get("Content-Type"))

			ts, ok := req.body["timestamp"].(string)
			require.True(t, ok)
			_, err := time.Parse(time.RFC3339, ts)
			assert.NoError(t, err)
		}
	})

	t.Run("falha de um destino não derruba os demais", func(t *testing.T) {
		srvBad, gotBad := newTargetServer(t, http.StatusInternalServerError)
		srvOK, gotOK := newTargetServer(t, http.StatusOK)

		configs := []model.WebhookConfigModel{
			{WebhookURL: srvBad.URL, WebhookEvent: "birthday", WebhookActive: true},
			{WebhookURL: "http://127.0.0.1:1/unreachable", WebhookEvent: "birthday", WebhookActive: true},
			{WebhookURL: srvOK.URL, WebhookEvent: "birthday", WebhookActive: true},
		}

		DeliverAll(configs, "birthday", map[string]any{"contact_id": "xyz"})

		// o saudável recebe mesmo com um 500 e um destino inalcançável no meio
		require.Len(t, gotOK(), 1)
		require.Len(t, gotBad(), 1)
		assert.Equal(t, "birthday", gotOK()[0].body["event"])
	})

	t.Run("headers configurados acompanham a entrega", func(t *testing.T) {
		srv, got := newTargetServer(t, http.StatusOK)

		configs := []model.WebhookConfigModel{
			{
				WebhookURL:   srv.URL,
				WebhookEvent: "new_contact",
				WebhookHeaders: datatypes.JSONMap{
					"Authorization": "Bearer segredo",
					"X-Source":      "videira",
				},
				WebhookActive: true,
			},
		}

		DeliverAll(configs, "new_contact", map[string]any{})

		reqs := got()
		require.Len(t, reqs, 1)
		assert.Equal(t, "Bearer segredo", reqs[0].headers.Get("Authorization"))
		assert.Equal(t, "videira", reqs[0].headers.Get("X-Source"))
	})

	t.Run("sem configs: não faz nada", func(t *testing.T) {
		DeliverAll(nil, "new_contact", map[string]any{"k": "v"})
	})
}

func TestBuildBody(t *testing.T) {
	body := buildBody("new_contact", map[string]any{"name": "João"})

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "new_contact", decoded["event"])
	assert.Equal(t, "João", decoded["name"])
	assert.Contains(t, decoded, "timestamp")
}

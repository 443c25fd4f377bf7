package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"videira_backend/internals/constants"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func newFormApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewPublicFormController(db)
	app.Post("/form", ctrl.Submit)
	app.Post("/form/:eventKey", ctrl.Submit)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

type submitEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		ContactID      string  `json:"contact_id"`
		ContactName    string  `json:"contact_name"`
		AttendanceCode *string `json:"attendance_code"`
	} `json:"data"`
}

func TestPublicFormSubmit(t *testing.T) {
	t.Run("cadastro vira contato pendente com código e webhook new_contact", func(t *testing.T) {
		delivered := make(chan map[string]any, 1)
		target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]any
			_ = json.NewDecoder(r.Body).Decode(&payload)
			delivered <- payload
			w.WriteHeader(http.StatusOK)
		}))
		defer target.Close()

		db, mock := newMockDB(t)
		contactID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "contacts"`).
			WillReturnRows(sqlmock.NewRows([]string{"contact_id"}).AddRow(contactID.String()))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT .* FROM "webhook_configs"`).
			WillReturnRows(sqlmock.NewRows([]string{"webhook_id", "webhook_url", "webhook_event", "webhook_active"}).
				AddRow(uuid.New().String(), target.URL, constants.WebhookEventNewContact, true))

		app := newFormApp(db)
		resp := postJSON(t, app, "/form",
			`{"contact_name":"Maria","contact_whatsapp":"11999999999","contact_neighborhood":"Centro"}`)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var env submitEnvelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		assert.True(t, env.Success)
		assert.Equal(t, contactID.String(), env.Data.ContactID)
		assert.Equal(t, "Maria", env.Data.ContactName)
		require.NotNil(t, env.Data.AttendanceCode)
		assert.Len(t, *env.Data.AttendanceCode, 6)

		select {
		case payload := <-delivered:
			assert.Equal(t, constants.WebhookEventNewContact, payload["event"])
			assert.Equal(t, "Maria", payload["name"])
			assert.Equal(t, "11999999999", payload["whatsapp"])
			assert.Equal(t, constants.ContactStatusPending, payload["status"])
			ts, _ := payload["timestamp"].(string)
			_, err := time.Parse(time.RFC3339, ts)
			assert.NoError(t, err, "timestamp precisa ser RFC3339")
		case <-time.After(2 * time.Second):
			t.Fatal("webhook new_contact não chegou no destino")
		}
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("evento inexistente ou encerrado responde 404 sem cadastrar", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT .* FROM "form_events"`).
			WillReturnError(gorm.ErrRecordNotFound)

		app := newFormApp(db)
		resp := postJSON(t, app, "/form/conferencia-2026",
			`{"contact_name":"Maria","contact_whatsapp":"11999999999","contact_neighborhood":"Centro"}`)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("campos obrigatórios ausentes respondem 422 sem tocar o banco", func(t *testing.T) {
		db, mock := newMockDB(t)

		app := newFormApp(db)
		resp := postJSON(t, app, "/form", `{"contact_name":"Maria"}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

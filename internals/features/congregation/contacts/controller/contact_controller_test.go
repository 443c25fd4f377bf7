package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
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

// newPanelApp monta o PATCH de contatos com os claims que o middleware de
// auth gravaria em c.Locals
func newPanelApp(db *gorm.DB, role string, userID uuid.UUID, cellIDs []string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		c.Locals("userRole", role)
		c.Locals("cell_ids", cellIDs)
		return c.Next()
	})
	ctrl := NewContactController(db)
	app.Patch("/contacts/:id", ctrl.Update)
	return app
}

func patchJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestContactUpdateCamposRestritos(t *testing.T) {
	leaderID := uuid.New()
	contactID := uuid.New()
	cellID := uuid.New()

	contactRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"contact_id", "contact_name", "contact_whatsapp", "contact_status", "contact_leader_id",
		}).AddRow(contactID.String(), "João", "11888887777", "pending", leaderID.String())
	}

	t.Run("líder mandando só cell_id/leader_id recebe o registro inalterado", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT .* FROM "contacts"`).WillReturnRows(contactRows())
		// nenhum UPDATE esperado: os campos restritos são retidos em silêncio

		app := newPanelApp(db, "leader", leaderID, []string{cellID.String()})
		body := fmt.Sprintf(`{"contact_cell_id":%q,"contact_leader_id":%q}`,
			uuid.New().String(), uuid.New().String())
		resp := patchJSON(t, app, "/contacts/"+contactID.String(), body)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var env struct {
			Success bool `json:"success"`
			Data    struct {
				ContactID       string  `json:"contact_id"`
				ContactCellID   *string `json:"contact_cell_id"`
				ContactLeaderID *string `json:"contact_leader_id"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		assert.True(t, env.Success)
		assert.Equal(t, contactID.String(), env.Data.ContactID)
		assert.Nil(t, env.Data.ContactCellID, "o vínculo de célula não pode mudar")
		require.NotNil(t, env.Data.ContactLeaderID)
		assert.Equal(t, leaderID.String(), *env.Data.ContactLeaderID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("patch realmente vazio continua sendo 400", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT .* FROM "contacts"`).WillReturnRows(contactRows())

		app := newPanelApp(db, "leader", leaderID, []string{cellID.String()})
		resp := patchJSON(t, app, "/contacts/"+contactID.String(), `{}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("campo permitido junto com os restritos aplica normalmente", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT .* FROM "contacts"`).WillReturnRows(contactRows())
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "contacts" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		reloaded := sqlmock.NewRows([]string{
			"contact_id", "contact_name", "contact_whatsapp", "contact_status", "contact_leader_id",
		}).AddRow(contactID.String(), "João Pedro", "11888887777", "pending", leaderID.String())
		mock.ExpectQuery(`SELECT .* FROM "contacts"`).WillReturnRows(reloaded)

		app := newPanelApp(db, "leader", leaderID, []string{cellID.String()})
		body := fmt.Sprintf(`{"contact_name":"João Pedro","contact_cell_id":%q}`, uuid.New().String())
		resp := patchJSON(t, app, "/contacts/"+contactID.String(), body)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var env struct {
			Data struct {
				ContactName string `json:"contact_name"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		assert.Equal(t, "João Pedro", env.Data.ContactName)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

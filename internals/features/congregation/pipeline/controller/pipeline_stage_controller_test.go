package controller

import (
	"net/http"
	"net/http/httptest"
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

func newStageApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewPipelineStageController(db)
	app.Delete("/pipeline/stages/:id", ctrl.Delete)
	return app
}

func TestPipelineStageDelete(t *testing.T) {
	stageID := uuid.New()

	stageRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"stage_id", "stage_name", "stage_color", "stage_position"}).
			AddRow(stageID.String(), "Batismo", "#3366ff", 2)
	}

	t.Run("desvincula os contatos antes de remover, na mesma transação", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`SELECT .* FROM "pipeline_stages"`).WillReturnRows(stageRows())
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "contacts" SET "contact_pipeline_stage_id"=`).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`UPDATE "pipeline_stages" SET "stage_deleted_at"=`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		app := newStageApp(db)
		req := httptest.NewRequest(http.MethodDelete, "/pipeline/stages/"+stageID.String(), nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha ao desvincular desfaz tudo e não remove a etapa", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(`SELECT .* FROM "pipeline_stages"`).WillReturnRows(stageRows())
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "contacts" SET "contact_pipeline_stage_id"=`).
			WillReturnError(gorm.ErrInvalidTransaction)
		mock.ExpectRollback()

		app := newStageApp(db)
		req := httptest.NewRequest(http.MethodDelete, "/pipeline/stages/"+stageID.String(), nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

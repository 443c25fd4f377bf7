package database

import (
	"log"

	attendanceModel "videira_backend/internals/features/cells/attendance/model"
	cellModel "videira_backend/internals/features/cells/cells/model"
	contactModel "videira_backend/internals/features/congregation/contacts/model"
	formModel "videira_backend/internals/features/congregation/forms/model"
	ministryModel "videira_backend/internals/features/congregation/ministries/model"
	pipelineModel "videira_backend/internals/features/congregation/pipeline/model"
	noticeModel "videira_backend/internals/features/home/notices/model"
	settingModel "videira_backend/internals/features/home/settings/model"
	authModel "videira_backend/internals/features/users/auth/model"
	userModel "videira_backend/internals/features/users/user/model"
	webhookModel "videira_backend/internals/features/webhooks/model"
)

// Migrate cria/ajusta o schema. Controlado por DB_AUTOMIGRATE para
// não rodar em produção com PgBouncer.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&contactModel.ContactModel{},
		&pipelineModel.PipelineStageModel{},
		&cellModel.CellModel{},
		&attendanceModel.AttendanceModel{},
		&ministryModel.MinistryModel{},
		&ministryModel.MinistryMemberModel{},
		&webhookModel.WebhookConfigModel{},
		&noticeModel.NoticeModel{},
		&settingModel.AppSettingModel{},
		&formModel.FormEventModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate falhou: %v", err)
	}
	log.Println("✅ Schema atualizado.")
}

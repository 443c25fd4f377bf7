package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"videira_backend/internals/features/home/settings/model"
	helper "videira_backend/internals/helpers"
)

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

type settingUpsertRequest struct {
	SettingKey   string                 `json:"setting_key" validate:"required,min=2,max=120"`
	SettingValue map[string]interface{} `json:"setting_value" validate:"required"`
}

// 🟢 GET /qr/:keyword — redirect público do QR impresso
// A chave `qr:<keyword>` guarda {"url": "..."}.
func (ctrl *SettingController) QRRedirect(c *fiber.Ctx) error {
	keyword := strings.ToLower(strings.TrimSpace(c.Params("keyword")))
	if keyword == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Palavra-chave obrigatória")
	}

	var setting model.AppSettingModel
	if err := ctrl.DB.Where("setting_key = ?", "qr:"+keyword).First(&setting).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "QR não configurado")
	}

	url, _ := setting.SettingValue["url"].(string)
	if url == "" {
		log.Printf("[WARN] QR %q sem url configurada", keyword)
		return helper.JsonError(c, fiber.StatusNotFound, "QR não configurado")
	}
	return c.Redirect(url, fiber.StatusFound)
}

// 🟢 GET /api/a/settings
func (ctrl *SettingController) List(c *fiber.Ctx) error {
	var settings []model.AppSettingModel
	if err := ctrl.DB.Order("setting_key ASC").Find(&settings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar configurações")
	}
	return helper.JsonOK(c, "ok", settings)
}

// 🟡 PUT /api/a/settings — upsert por setting_key
func (ctrl *SettingController) Upsert(c *fiber.Ctx) error {
	var req settingUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	setting := model.AppSettingModel{
		SettingKey:   strings.TrimSpace(req.SettingKey),
		SettingValue: datatypes.JSONMap(req.SettingValue),
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "setting_updated_at"}),
	}).Create(&setting).Error; err != nil {
		log.Printf("[ERROR] Falha ao salvar configuração %q: %v", req.SettingKey, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar configuração")
	}
	return helper.JsonUpdated(c, "Configuração salva", setting)
}

// 🔴 DELETE /api/a/settings/:key
func (ctrl *SettingController) Delete(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))
	if key == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Chave obrigatória")
	}

	res := ctrl.DB.Where("setting_key = ?", key).Delete(&model.AppSettingModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover configuração")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Configuração não encontrada")
	}
	return helper.JsonDeleted(c, "Configuração removida", nil)
}

package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"videira_backend/internals/features/congregation/contacts/dto"
	"videira_backend/internals/features/congregation/contacts/model"
	"videira_backend/internals/features/congregation/contacts/service"
	helper "videira_backend/internals/helpers"
	"videira_backend/internals/helpers/storage"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// scopeForCaller restringe a query ao escopo do chamador:
// admin enxerga tudo; líder só os contatos das suas células ou liderados por ele.
func scopeForCaller(c *fiber.Ctx, q *gorm.DB) (*gorm.DB, error) {
	if helper.IsAdmin(c) {
		return q, nil
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	cellIDs := helper.GetLeaderCellIDs(c)
	if len(cellIDs) > 0 {
		return q.Where("contact_cell_id IN ? OR contact_leader_id = ?", cellIDs, userID), nil
	}
	return q.Where("contact_leader_id = ?", userID), nil
}

// 🟢 POST /api/u/contacts
func (ctrl *ContactController) Create(c *fiber.Ctx) error {
	var req dto.ContactCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}

	contact, fieldErrors, err := service.CreateContact(ctrl.DB, &req)
	if err != nil {
		log.Printf("[ERROR] Falha ao criar contato: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar contato")
	}
	if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}

	return helper.JsonCreated(c, "Contato cadastrado", dto.ToContactResponse(contact))
}

// 🟢 GET /api/u/contacts?q=&status=&cell_id=&page=&per_page=
func (ctrl *ContactController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.ContactModel{})
	base, err := scopeForCaller(c, base)
	if err != nil {
		return err
	}

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("contact_name ILIKE ? OR contact_whatsapp ILIKE ?", like, like)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		base = base.Where("contact_status = ?", status)
	}
	if cellID := strings.TrimSpace(c.Query("cell_id")); cellID != "" {
		base = base.Where("contact_cell_id = ?", cellID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Falha ao contar contatos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar contatos")
	}

	var contacts []model.ContactModel
	if err := base.
		Order("contact_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&contacts).Error; err != nil {
		log.Printf("[ERROR] Falha ao listar contatos: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar contatos")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.ToContactResponseList(contacts), &pagination)
}

// 🟢 GET /api/u/contacts/:id
func (ctrl *ContactController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Contato ID inválido")
	}

	q := ctrl.DB.Where("contact_id = ?", id)
	q, scopeErr := scopeForCaller(c, q)
	if scopeErr != nil {
		return scopeErr
	}

	var contact model.ContactModel
	if err := q.First(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Contato não encontrado")
	}

	return helper.JsonOK(c, "ok", dto.ToContactResponse(&contact))
}

// 🟢 GET /api/u/contacts/code/:code — busca pelo código de presença
func (ctrl *ContactController) GetByCode(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Código obrigatório")
	}

	q := ctrl.DB.Where("contact_attendance_code = ?", code)
	q, scopeErr := scopeForCaller(c, q)
	if scopeErr != nil {
		return scopeErr
	}

	var contact model.ContactModel
	if err := q.First(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Contato não encontrado")
	}

	return helper.JsonOK(c, "ok", dto.ToContactResponse(&contact))
}

// 🟡 PATCH /api/u/contacts/:id
func (ctrl *ContactController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Contato ID inválido")
	}

	q := ctrl.DB.Where("contact_id = ?", id)
	q, scopeErr := scopeForCaller(c, q)
	if scopeErr != nil {
		return scopeErr
	}

	var contact model.ContactModel
	if err := q.First(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Contato não encontrado")
	}

	var req dto.ContactUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}

	// cell_id/leader_id de não-admin são retidos em silêncio pelo BuildUpdates
	updates, newReferredBy, referredByChanged, fieldErrors := req.BuildUpdates(helper.IsAdmin(c))
	if fieldErrors != nil {
		return helper.JsonValidationError(c, fieldErrors)
	}
	if len(updates) == 0 {
		// se só vieram os campos retidos, o patch "aplica" sem mudar nada:
		// devolve o registro como está em vez de reclamar de corpo vazio
		if !helper.IsAdmin(c) && (req.ContactCellID != nil || req.ContactLeaderID != nil) {
			return helper.JsonUpdated(c, "Contato atualizado", dto.ToContactResponse(&contact))
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum campo para atualizar")
	}

	// um novo referred_by não pode fechar ciclo na genealogia
	if referredByChanged {
		cyclic, err := service.WouldCreateReferralCycleDB(ctrl.DB, contact.ContactID, newReferredBy)
		if err != nil {
			log.Printf("[ERROR] Falha ao verificar ciclo de indicação: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao verificar indicação")
		}
		if cyclic {
			return helper.JsonValidationError(c, map[string][]string{
				"contact_referred_by": {"indicação criaria um ciclo na genealogia"},
			})
		}
	}

	if err := ctrl.DB.Model(&contact).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Falha ao atualizar contato: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar contato")
	}

	// recarrega para a resposta refletir o que foi de fato persistido
	if err := ctrl.DB.Where("contact_id = ?", id).First(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recarregar contato")
	}
	return helper.JsonUpdated(c, "Contato atualizado", dto.ToContactResponse(&contact))
}

// 🔴 DELETE /api/a/contacts/:id[?hard=true]
func (ctrl *ContactController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Contato ID inválido")
	}

	var contact model.ContactModel
	if err := ctrl.DB.Where("contact_id = ?", id).First(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Contato não encontrado")
	}

	hard := strings.EqualFold(c.Query("hard"), "true")
	tx := ctrl.DB
	if hard {
		// hard delete dispara a política referencial do banco (presenças, ministérios)
		tx = tx.Unscoped()
	}
	if err := tx.Delete(&contact).Error; err != nil {
		log.Printf("[ERROR] Falha ao remover contato: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover contato")
	}

	msg := "Contato removido"
	if hard {
		msg = "Contato removido permanentemente"
	}
	return helper.JsonDeleted(c, msg, nil)
}

// 🟢 POST /api/u/contacts/:id/photo (multipart: photo)
func (ctrl *ContactController) UploadPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Contato ID inválido")
	}

	q := ctrl.DB.Where("contact_id = ?", id)
	q, scopeErr := scopeForCaller(c, q)
	if scopeErr != nil {
		return scopeErr
	}

	var contact model.ContactModel
	if err := q.First(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Contato não encontrado")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo 'photo' ausente")
	}

	photoURL, err := storage.SaveContactPhoto("contacts", fileHeader)
	if err != nil {
		log.Printf("[ERROR] Falha no upload de foto: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar a foto")
	}

	if err := ctrl.DB.Model(&contact).Update("contact_photo_url", photoURL).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar a foto")
	}

	return helper.JsonUpdated(c, "Foto atualizada", fiber.Map{"contact_photo_url": photoURL})
}

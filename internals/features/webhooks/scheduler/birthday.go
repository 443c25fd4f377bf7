package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"videira_backend/internals/constants"
	contactModel "videira_backend/internals/features/congregation/contacts/model"
	webhookService "videira_backend/internals/features/webhooks/service"
)

// StartBirthdayWebhookScheduler dispara o evento "birthday" uma vez por dia
// para cada contato aniversariante (comparação mês/dia).
func StartBirthdayWebhookScheduler(db *gorm.DB) {
	go func() {
		// intervalo configurável para facilitar teste manual (default: 24h)
		intervalHours := 24
		if val := os.Getenv("BIRTHDAY_SCHEDULER_INTERVAL_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}

		for {
			log.Println("[BIRTHDAY] Verificando aniversariantes do dia...")

			now := time.Now()
			var contacts []contactModel.ContactModel
			if err := db.
				Where("contact_birth_date IS NOT NULL").
				Where("EXTRACT(MONTH FROM contact_birth_date) = ? AND EXTRACT(DAY FROM contact_birth_date) = ?",
					int(now.Month()), now.Day()).
				Find(&contacts).Error; err != nil {
				log.Printf("[BIRTHDAY ERROR] Falha ao buscar aniversariantes: %v", err)
			} else if len(contacts) > 0 {
				log.Printf("[BIRTHDAY] %d aniversariante(s) hoje", len(contacts))
				for i := range contacts {
					c := contacts[i]
					payload := map[string]any{
						"contact_id": c.ContactID.String(),
						"name":       c.ContactName,
						"whatsapp":   c.ContactWhatsapp,
					}
					if c.ContactBirthDate != nil {
						payload["birth_date"] = c.ContactBirthDate.Format("2006-01-02")
					}
					webhookService.Dispatch(db, constants.WebhookEventBirthday, payload)
				}
			} else {
				log.Println("[BIRTHDAY] Nenhum aniversariante hoje")
			}

			time.Sleep(time.Duration(intervalHours) * time.Hour)
		}
	}()
}

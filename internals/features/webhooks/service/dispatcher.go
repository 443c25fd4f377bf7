package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"gorm.io/gorm"

	"videira_backend/internals/features/webhooks/model"
)

// Cliente compartilhado com timeout curto: entrega de webhook nunca pode
// segurar uma requisição do usuário.
var httpClient = &http.Client{Timeout: 10 * time.Second}

// Dispatch carrega as configs ativas do evento e entrega para todas.
// Best-effort: falha de uma entrega só é logada, não afeta as demais
// e não há retry nem garantia de ordem.
func Dispatch(db *gorm.DB, event string, payload map[string]any) {
	var configs []model.WebhookConfigModel
	if err := db.
		Where("webhook_event = ? AND webhook_active = true", event).
		Find(&configs).Error; err != nil {
		log.Printf("[WEBHOOK ERROR] Falha ao carregar configs do evento %s: %v", event, err)
		return
	}
	if len(configs) == 0 {
		return
	}
	DeliverAll(configs, event, payload)
}

// DeliverAll faz o fan-out para as configs já carregadas (separado para teste).
func DeliverAll(configs []model.WebhookConfigModel, event string, payload map[string]any) {
	body := buildBody(event, payload)

	var wg sync.WaitGroup
	for i := range configs {
		cfg := configs[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := deliver(&cfg, body); err != nil {
				log.Printf("[WEBHOOK ERROR] evento=%s url=%s: %v", event, cfg.WebhookURL, err)
			}
		}()
	}
	wg.Wait()
}

// buildBody mescla o payload com os metadados do evento
func buildBody(event string, payload map[string]any) []byte {
	merged := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		merged[k] = v
	}
	merged["event"] = event
	merged["timestamp"] = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(merged)
	if err != nil {
		log.Printf("[WEBHOOK ERROR] Falha ao serializar payload do evento %s: %v", event, err)
		return []byte("{}")
	}
	return body
}

func deliver(cfg *model.WebhookConfigModel, body []byte) error {
	req, err := http.NewRequest(http.MethodPost, cfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range cfg.WebhookHeaders {
		if s, ok := v.(string); ok {
			req.Header.Set(k, s)
		}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}

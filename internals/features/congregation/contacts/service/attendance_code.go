package service

import (
	"crypto/rand"
	"errors"
	"math/big"

	"gorm.io/gorm"

	"videira_backend/internals/features/congregation/contacts/model"
)

// Alfabeto sem caracteres ambíguos (0/O, 1/I) — o código é digitado por pessoas
const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 6
	maxAttempts  = 20
)

// ErrCodeExhausted: esgotadas as tentativas de gerar um código livre
var ErrCodeExhausted = errors.New("não foi possível gerar um código de presença único")

// randomCode sorteia um código do alfabeto fixo via crypto/rand
func randomCode() (string, error) {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// GenerateAttendanceCode produz um código único segundo o probe `exists`.
// Em colisão, sorteia de novo; acima de maxAttempts devolve ErrCodeExhausted.
// Nenhum efeito colateral: quem persiste o código é o chamador.
func GenerateAttendanceCode(exists func(code string) (bool, error)) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := randomCode()
		if err != nil {
			return "", err
		}
		taken, err := exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrCodeExhausted
}

// GenerateAttendanceCodeDB: probe de unicidade contra contacts (inclui soft-deleted,
// para o código nunca ser reaproveitado)
func GenerateAttendanceCodeDB(db *gorm.DB) (string, error) {
	return GenerateAttendanceCode(func(code string) (bool, error) {
		var count int64
		err := db.Unscoped().
			Model(&model.ContactModel{}).
			Where("contact_attendance_code = ?", code).
			Count(&count).Error
		if err != nil {
			return false, err
		}
		return count > 0, nil
	})
}

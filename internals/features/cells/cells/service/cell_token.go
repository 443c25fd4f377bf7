package service

import (
	"crypto/rand"
	"errors"
	"math/big"

	"gorm.io/gorm"

	"videira_backend/internals/features/cells/cells/model"
)

// Token da página pública de presença da célula (vai em link/QR)
const (
	tokenAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"
	tokenLength   = 8
	maxAttempts   = 20
)

var ErrTokenExhausted = errors.New("não foi possível gerar um token de célula único")

// GenerateCellToken sorteia e garante unicidade contra cells.cell_token
func GenerateCellToken(db *gorm.DB) (string, error) {
	max := big.NewInt(int64(len(tokenAlphabet)))
	for attempt := 0; attempt < maxAttempts; attempt++ {
		buf := make([]byte, tokenLength)
		for i := range buf {
			n, err := rand.Int(rand.Reader, max)
			if err != nil {
				return "", err
			}
			buf[i] = tokenAlphabet[n.Int64()]
		}
		token := string(buf)

		var count int64
		if err := db.Unscoped().Model(&model.CellModel{}).
			Where("cell_token = ?", token).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return token, nil
		}
	}
	return "", ErrTokenExhausted
}

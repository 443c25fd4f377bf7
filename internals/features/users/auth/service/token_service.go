// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"videira_backend/internals/configs"
	authModel "videira_backend/internals/features/users/auth/model"
	userModel "videira_backend/internals/features/users/user/model"
)

const (
	accessTTL  = 2 * time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

var ErrRefreshUnknown = errors.New("refresh token desconhecido")

// buildAccessClaims monta os claims do access token: sub, role, user_name e
// as células lideradas (usadas pelo guard de escopo de líder).
func buildAccessClaims(u *userModel.UserModel, cellIDs []string, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       u.ID.String(),
		"role":      u.Role,
		"user_name": u.UserName,
		"cell_ids":  cellIDs,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
}

// IssueTokens assina o par access+refresh e persiste o hash do refresh.
func IssueTokens(db *gorm.DB, u *userModel.UserModel, userAgent, ip string) (access string, refresh string, err error) {
	now := time.Now().UTC()

	cellIDs, err := leaderCellIDs(db, u.ID)
	if err != nil {
		return "", "", err
	}

	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, cellIDs, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", "", err
	}

	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.ID, now)).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", "", err
	}

	rec := authModel.RefreshTokenModel{
		UserID:    u.ID,
		Token:     ComputeRefreshHash(refresh),
		ExpiresAt: now.Add(refreshTTL),
	}
	if userAgent != "" {
		rec.UserAgent = &userAgent
	}
	if ip != "" {
		rec.IP = &ip
	}
	if err := db.Create(&rec).Error; err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// RotateRefreshToken valida o refresh recebido, revoga o antigo e emite um par novo.
func RotateRefreshToken(db *gorm.DB, refreshToken, userAgent, ip string) (string, string, *userModel.UserModel, error) {
	tok, err := jwt.Parse(refreshToken, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return "", "", nil, errors.New("refresh token inválido")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return "", "", nil, errors.New("refresh token inválido")
	}

	// o hash precisa existir no banco (senão foi revogado/rotacionado)
	h := ComputeRefreshHash(refreshToken)
	var count int64
	if err := db.Model(&authModel.RefreshTokenModel{}).
		Where("token = ? AND expires_at > now()", h).
		Count(&count).Error; err != nil {
		return "", "", nil, err
	}
	if count == 0 {
		return "", "", nil, ErrRefreshUnknown
	}

	var u userModel.UserModel
	if err := db.Where("id = ?", userID).First(&u).Error; err != nil {
		return "", "", nil, err
	}
	if !u.IsActive {
		return "", "", nil, errors.New("conta desativada")
	}

	// ROTATE: remove o token antigo antes de emitir o novo
	if err := db.Where("token = ?", h).Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
		return "", "", nil, err
	}

	access, refresh, err := IssueTokens(db, &u, userAgent, ip)
	if err != nil {
		return "", "", nil, err
	}
	return access, refresh, &u, nil
}

// RevokeRefreshToken apaga o hash do refresh (logout)
func RevokeRefreshToken(db *gorm.DB, refreshToken string) error {
	return db.Where("token = ?", ComputeRefreshHash(refreshToken)).
		Delete(&authModel.RefreshTokenModel{}).Error
}

// ComputeRefreshHash: HMAC-SHA256 do token com o refresh secret
func ComputeRefreshHash(token string) string {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// leaderCellIDs busca as células lideradas pelo usuário para virar claim
func leaderCellIDs(db *gorm.DB, userID uuid.UUID) ([]string, error) {
	var ids []string
	if err := db.Table("cells").
		Where("cell_leader_id = ? AND cell_deleted_at IS NULL", userID).
		Pluck("cell_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// LeaderCellIDsForUser é a variante exportada usada no /me
func LeaderCellIDsForUser(db *gorm.DB, userID uuid.UUID) []string {
	ids, err := leaderCellIDs(db, userID)
	if err != nil {
		return nil
	}
	return ids
}

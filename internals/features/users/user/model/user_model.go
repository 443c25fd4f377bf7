package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel representa a tabela users (admins, líderes e membros com acesso ao painel)
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email     string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password  string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Role      string    `gorm:"type:varchar(20);not null;default:'member'" json:"role" validate:"omitempty,oneof=admin leader member"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues garante defaults antes da validação
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "member"
	}
}

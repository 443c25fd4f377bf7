package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"videira_backend/internals/features/users/auth/dto"
	"videira_backend/internals/features/users/auth/service"
	userModel "videira_backend/internals/features/users/user/model"
	helper "videira_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 POST /api/a/users (admin cadastra admins/líderes/membros)
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar a senha")
	}

	u := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
		Role:     req.Role,
	}
	u.SetDefaultValues()

	if err := ctrl.DB.Create(&u).Error; err != nil {
		log.Printf("[ERROR] Falha ao criar usuário: %v", err)
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email já cadastrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar usuário")
	}

	return helper.JsonCreated(c, "Usuário criado", dto.UserResponse{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		Role:     u.Role,
	})
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u userModel.UserModel
	if err := ctrl.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&u).Error; err != nil {
		// mesma mensagem para email inexistente e senha errada
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}
	if !u.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}

	access, refresh, err := service.IssueTokens(ctrl.DB, &u, c.Get("User-Agent"), c.IP())
	if err != nil {
		log.Printf("[ERROR] Falha ao emitir tokens: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir tokens")
	}

	return helper.JsonOK(c, "Login realizado", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User: dto.UserResponse{
			ID:       u.ID,
			UserName: u.UserName,
			Email:    u.Email,
			Role:     u.Role,
			CellIDs:  service.LeaderCellIDsForUser(ctrl.DB, u.ID),
		},
	})
}

// 🟢 POST /api/auth/refresh  (body: { "refresh_token": "..." })
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.RefreshToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Refresh token ausente")
	}

	access, refresh, u, err := service.RotateRefreshToken(ctrl.DB, body.RefreshToken, c.Get("User-Agent"), c.IP())
	if err != nil {
		if errors.Is(err, service.ErrRefreshUnknown) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token desconhecido")
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}

	return helper.JsonOK(c, "Tokens renovados", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User: dto.UserResponse{
			ID:       u.ID,
			UserName: u.UserName,
			Email:    u.Email,
			Role:     u.Role,
			CellIDs:  service.LeaderCellIDsForUser(ctrl.DB, u.ID),
		},
	})
}

// 🟡 POST /api/u/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	_ = c.BodyParser(&body)
	if strings.TrimSpace(body.RefreshToken) != "" {
		if err := service.RevokeRefreshToken(ctrl.DB, body.RefreshToken); err != nil {
			log.Printf("[ERROR] Falha ao revogar refresh: %v", err)
		}
	}
	return helper.JsonOK(c, "Logout realizado", nil)
}

// 🟢 GET /api/u/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var u userModel.UserModel
	if err := ctrl.DB.Where("id = ?", userID).First(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	return helper.JsonOK(c, "ok", dto.UserResponse{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		Role:     u.Role,
		CellIDs:  service.LeaderCellIDsForUser(ctrl.DB, u.ID),
	})
}

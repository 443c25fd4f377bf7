package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"videira_backend/internals/constants"
)

// Leitores dos claims gravados em c.Locals pelo middleware de auth.
// Sempre retornar fiber.Error para o handler propagar direto.

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id ausente no token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id inválido")
	}
	return id, nil
}

func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}

func IsAdmin(c *fiber.Ctx) bool {
	return GetUserRole(c) == constants.RoleAdmin
}

func IsLeader(c *fiber.Ctx) bool {
	return GetUserRole(c) == constants.RoleLeader
}

// GetLeaderCellIDs retorna as células lideradas pelo usuário do token
// (claim "cell_ids", preenchido no login e no refresh).
func GetLeaderCellIDs(c *fiber.Ctx) []uuid.UUID {
	raw, ok := c.Locals("cell_ids").([]string)
	if !ok {
		return nil
	}
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		if id, err := uuid.Parse(s); err == nil {
			out = append(out, id)
		}
	}
	return out
}

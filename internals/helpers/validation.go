package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Instância única do validator (thread-safe)
var Validate = validator.New()

// ValidationError converte erros do validator.v10 no envelope 422 padrão
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Entrada inválida")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], validationMessage(fe))
	}
	return JsonValidationError(c, fieldErrors)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "min":
		return "mínimo de " + fe.Param() + " caracteres"
	case "max":
		return "máximo de " + fe.Param() + " caracteres"
	case "oneof":
		return "deve ser um de: " + fe.Param()
	case "url":
		return "URL inválida"
	case "uuid":
		return "UUID inválido"
	default:
		return "formato inválido"
	}
}

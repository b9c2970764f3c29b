package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/construsys/obras-api/internal/application/dto"
	"github.com/construsys/obras-api/internal/domain"
)

// errInvalidDate erro compartilhado dos handlers para datas de query malformadas.
var errInvalidDate = domain.NewValidationError(domain.ConstraintDataValida,
	"data inválida, use o formato YYYY-MM-DD")

// respondError mapeia erros de domínio para o status e corpo HTTP.
// Falha de validação por estoque vira 409 com o saldo atual no corpo; demais
// validações viram 400 com a constraint nomeada. Erros de store sobem como 500
// sem serem engolidos.
func respondError(c *fiber.Ctx, err error) error {
	if ve, ok := domain.AsValidation(err); ok {
		status := fiber.StatusBadRequest
		code := "VALIDATION"
		if ve.Constraint == domain.ConstraintEstoqueSuficiente {
			status = fiber.StatusConflict
			code = "INSUFFICIENT_STOCK"
		}
		body := dto.ErrorResponse{Code: code, Message: ve.Message, Constraint: ve.Constraint}
		if ve.Current != nil {
			body.CurrentStock = ve.Current.String()
		}
		return c.Status(status).JSON(body)
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso não encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "dados inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error()})
}

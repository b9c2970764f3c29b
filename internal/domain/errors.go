package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflito com o estado atual")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrObraInactive      = errors.New("obra não está ativa")
)

// Constraints nomeadas para ValidationError.
const (
	ConstraintQuantidadePositiva = "quantidade_positiva"
	ConstraintObraObrigatoria    = "obra_obrigatoria"
	ConstraintObraAtiva          = "obra_ativa"
	ConstraintEstoqueSuficiente  = "estoque_suficiente"
	ConstraintUsoSomenteMaterial = "uso_somente_material"
	ConstraintTipoMovimentacao   = "tipo_movimentacao"
	ConstraintItemObrigatorio    = "item_obrigatorio"
	ConstraintDataValida         = "data_valida"
)

// ValidationError indica que uma movimentação proposta viola uma precondição.
// Carrega a constraint violada e, quando aplicável, o estoque projetado na
// origem no momento da validação, para que a mensagem ao usuário seja acionável.
type ValidationError struct {
	Constraint string
	Message    string
	Current    *decimal.Decimal // estoque atual na origem, se relevante
}

func (e *ValidationError) Error() string {
	if e.Current != nil {
		return fmt.Sprintf("%s: %s (estoque atual: %s)", e.Constraint, e.Message, e.Current.String())
	}
	return fmt.Sprintf("%s: %s", e.Constraint, e.Message)
}

// NewValidationError cria um erro de validação sem estoque associado.
func NewValidationError(constraint, message string) *ValidationError {
	return &ValidationError{Constraint: constraint, Message: message}
}

// NewStockValidationError cria um erro de validação com o estoque projetado na origem.
func NewStockValidationError(constraint, message string, current decimal.Decimal) *ValidationError {
	return &ValidationError{Constraint: constraint, Message: message, Current: &current}
}

// AsValidation devolve o *ValidationError embutido em err, se houver.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

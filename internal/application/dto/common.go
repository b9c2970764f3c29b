package dto

// DateLayout formato de data de calendário usado em toda a API (sem fuso).
const DateLayout = "2006-01-02"

// PageRequest paginação para listagens.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores padrão se Limit/Offset forem zero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadados de página nas respostas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse corpo de erro HTTP. Constraint e CurrentStock vêm preenchidos
// em falha de validação do emissor, para a mensagem ao usuário ser acionável.
type ErrorResponse struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Constraint   string `json:"constraint,omitempty"`
	CurrentStock string `json:"current_stock,omitempty"`
}

package entity

import "time"

// Situações de uma obra.
const (
	ObraStatusAtiva     = "ativa"
	ObraStatusPausada   = "pausada"
	ObraStatusConcluida = "concluida"
)

// Obra representa um canteiro que pode receber, consumir e devolver itens.
// Somente obras ativas são destinos válidos de movimentação.
type Obra struct {
	ID        string
	Name      string
	Status    string // ativa | pausada | concluida
	Address   string
	ClienteID *string // cliente associado (opcional)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive informa se a obra aceita movimentações.
func (o *Obra) IsActive() bool {
	return o.Status == ObraStatusAtiva
}

// IsValidObraStatus informa se s é uma situação conhecida de obra.
func IsValidObraStatus(s string) bool {
	switch s {
	case ObraStatusAtiva, ObraStatusPausada, ObraStatusConcluida:
		return true
	}
	return false
}

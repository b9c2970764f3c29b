package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Situações de catálogo de uma ferramenta.
const (
	ToolStatusFuncionando = "funcionando"
	ToolStatusManutencao  = "manutencao"
	ToolStatusDescartada  = "descartada"
)

// Ferramenta representa um item retornável do catálogo (betoneira, furadeira).
// ObraAtualID é estado desnormalizado: nil significa "no almoxarifado central" e
// é atualizado na mesma transação de cada saída/retorno, nunca recalculado na
// leitura do catálogo.
type Ferramenta struct {
	ID          string
	Name        string
	Code        string
	Status      string          // funcionando | manutencao | descartada
	UnitValue   decimal.Decimal // opcional
	MinStock    decimal.Decimal // opcional
	ObraAtualID *string         // nil = almoxarifado central
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsValidToolStatus informa se s é uma situação conhecida de ferramenta.
func IsValidToolStatus(s string) bool {
	switch s {
	case ToolStatusFuncionando, ToolStatusManutencao, ToolStatusDescartada:
		return true
	}
	return false
}

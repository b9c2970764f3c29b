package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de item movimentável.
const (
	ItemTypeMaterial   = "material"
	ItemTypeFerramenta = "ferramenta"
)

// Tipos de movimentação do almoxarifado.
const (
	MovementTypeEntrada = "entrada" // fornecedor -> almoxarifado central
	MovementTypeSaida   = "saida"   // almoxarifado central -> obra
	MovementTypeUso     = "uso"     // consumo na obra (somente materiais)
	MovementTypeRetorno = "retorno" // obra -> almoxarifado central
)

// Movimentacao representa um evento assinado de transferência de quantidade no
// livro do almoxarifado. Append-only: nunca é alterada nem removida pelo fluxo
// normal; todo saldo de estoque deriva da redução deste livro.
type Movimentacao struct {
	ID            string
	ItemID        string
	ItemType      string // material | ferramenta
	Type          string // entrada | saida | uso | retorno
	Quantity      decimal.Decimal
	Date          time.Time // data de calendário; sem semântica de hora
	ObraID        *string   // destino/origem; nil para entrada
	ResponsavelID *string   // quem retirou (saída)
	Description   string    // nota fiscal, motivo de ajuste, etc.
	CreatedAt     time.Time
}

// IsValidMovementType informa se t é um tipo de movimentação conhecido.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementTypeEntrada, MovementTypeSaida, MovementTypeUso, MovementTypeRetorno:
		return true
	}
	return false
}

// RequiresObra informa se o tipo de movimentação exige obra de destino/origem.
func RequiresObra(t string) bool {
	return t == MovementTypeSaida || t == MovementTypeUso || t == MovementTypeRetorno
}

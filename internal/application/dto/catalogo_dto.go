package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest body para POST /api/materiais.
type CreateMaterialRequest struct {
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	MinStock  decimal.Decimal `json:"min_stock"`
	Supplier  string          `json:"supplier,omitempty"`
	UnitValue decimal.Decimal `json:"unit_value,omitempty"`
}

// MaterialResponse um material do catálogo.
type MaterialResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	MinStock  decimal.Decimal `json:"min_stock"`
	Supplier  string          `json:"supplier,omitempty"`
	UnitValue decimal.Decimal `json:"unit_value"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MaterialListResponse listagem paginada de materiais.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateFerramentaRequest body para POST /api/ferramentas.
// InitialQuantity > 0 gera uma entrada sintetizada no livro, na mesma transação.
type CreateFerramentaRequest struct {
	Name            string          `json:"name"`
	Code            string          `json:"code"`
	Status          string          `json:"status,omitempty"` // padrão: funcionando
	UnitValue       decimal.Decimal `json:"unit_value,omitempty"`
	MinStock        decimal.Decimal `json:"min_stock,omitempty"`
	InitialQuantity decimal.Decimal `json:"initial_quantity,omitempty"`
}

// UpdateFerramentaStatusRequest body para PATCH /api/ferramentas/:id/status.
type UpdateFerramentaStatusRequest struct {
	Status string `json:"status"` // funcionando | manutencao | descartada
}

// FerramentaResponse uma ferramenta do catálogo com sua localização atual.
type FerramentaResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	Status      string          `json:"status"`
	UnitValue   decimal.Decimal `json:"unit_value"`
	MinStock    decimal.Decimal `json:"min_stock"`
	ObraAtualID *string         `json:"obra_atual_id"` // null = almoxarifado central
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// FerramentaListResponse listagem paginada de ferramentas.
type FerramentaListResponse struct {
	Items []FerramentaResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// CreateObraRequest body para POST /api/obras.
type CreateObraRequest struct {
	Name      string  `json:"name"`
	Address   string  `json:"address,omitempty"`
	ClienteID *string `json:"cliente_id,omitempty"`
}

// UpdateObraStatusRequest body para PATCH /api/obras/:id/status.
type UpdateObraStatusRequest struct {
	Status string `json:"status"` // ativa | pausada | concluida
}

// ObraResponse uma obra do catálogo.
type ObraResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Address   string    `json:"address,omitempty"`
	ClienteID *string   `json:"cliente_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ObraListResponse listagem paginada de obras.
type ObraListResponse struct {
	Items []ObraResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

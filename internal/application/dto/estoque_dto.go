package dto

import "github.com/shopspring/decimal"

// SaldoItemDTO saldo projetado de um item em um escopo (central ou obra).
type SaldoItemDTO struct {
	ItemID   string          `json:"item_id"`
	ItemType string          `json:"item_type"`
	Name     string          `json:"name"`
	Unit     string          `json:"unit,omitempty"` // materiais
	Code     string          `json:"code,omitempty"` // ferramentas
	Quantity decimal.Decimal `json:"quantity"`
	MinStock decimal.Decimal `json:"min_stock"`
	BelowMin bool            `json:"below_min"`
}

// EstoqueResponse página de estoque de um escopo.
type EstoqueResponse struct {
	Scope string         `json:"scope"` // "central" ou o ID da obra
	Items []SaldoItemDTO `json:"items"`
}

// ObraSaldoDTO total de itens alocados em uma obra, para o dashboard.
type ObraSaldoDTO struct {
	ObraID      string          `json:"obra_id"`
	ObraName    string          `json:"obra_name"`
	Materiais   decimal.Decimal `json:"materiais"`   // soma das quantidades de materiais na obra
	Ferramentas decimal.Decimal `json:"ferramentas"` // soma das ferramentas na obra
}

// DashboardAlmoxarifadoResponse visão agregada do almoxarifado.
type DashboardAlmoxarifadoResponse struct {
	TotalMateriais   int            `json:"total_materiais"`
	TotalFerramentas int            `json:"total_ferramentas"`
	AbaixoMinimo     []SaldoItemDTO `json:"abaixo_minimo"`
	Obras            []ObraSaldoDTO `json:"obras"`
}

// ConsumoItemDTO custo consumido de um material no período.
type ConsumoItemDTO struct {
	MaterialID   string          `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	Total        decimal.Decimal `json:"total"`
}

// RelatorioConsumoResponse relatório de custo de consumo por obra.
type RelatorioConsumoResponse struct {
	ObraID string           `json:"obra_id"`
	From   string           `json:"from,omitempty"`
	To     string           `json:"to,omitempty"`
	Items  []ConsumoItemDTO `json:"items"`
	Total  decimal.Decimal  `json:"total"`
}

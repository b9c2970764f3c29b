package dto

import "github.com/shopspring/decimal"

// RegistrarMovimentacaoRequest body para POST /api/almoxarifado/movimentacoes.
// Date no formato YYYY-MM-DD; vazio = data de hoje.
type RegistrarMovimentacaoRequest struct {
	ItemID        string          `json:"item_id"`
	ItemType      string          `json:"item_type"` // material | ferramenta
	Type          string          `json:"type"`      // entrada | saida | uso | retorno
	Quantity      decimal.Decimal `json:"quantity"`
	Date          string          `json:"date,omitempty"`
	ObraID        *string         `json:"obra_id,omitempty"`
	ResponsavelID *string         `json:"responsavel_id,omitempty"`
	Description   string          `json:"description,omitempty"`
}

// MovimentacaoResponse uma movimentação do livro.
type MovimentacaoResponse struct {
	ID            string          `json:"id"`
	ItemID        string          `json:"item_id"`
	ItemType      string          `json:"item_type"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	Date          string          `json:"date"`
	ObraID        *string         `json:"obra_id,omitempty"`
	ResponsavelID *string         `json:"responsavel_id,omitempty"`
	Description   string          `json:"description,omitempty"`
}

// RegistrarMovimentacaoResponse resposta do emissor: a movimentação criada e,
// quando houve relocação, a ferramenta com o ponteiro de obra atualizado.
type RegistrarMovimentacaoResponse struct {
	Movimentacao MovimentacaoResponse `json:"movimentacao"`
	Ferramenta   *FerramentaResponse  `json:"ferramenta,omitempty"`
}

// MovimentacaoListResponse listagem paginada do livro.
type MovimentacaoListResponse struct {
	Items []MovimentacaoResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

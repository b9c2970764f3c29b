// Package estoque contém os serviços de domínio puros do almoxarifado: a
// projeção de saldos a partir do livro de movimentações e a agregação de
// custo de consumo. Nenhuma função deste pacote faz I/O nem altera entradas;
// todo saldo do sistema deriva exclusivamente destas reduções.
package estoque

import (
	"github.com/shopspring/decimal"

	"github.com/construsys/obras-api/internal/domain/entity"
)

// Saldos mapeia itemID -> quantidade líquida projetada. Chave ausente significa
// saldo zero; usar StockOf para leitura, nunca indexar direto.
type Saldos map[string]decimal.Decimal

// StockOf devolve o saldo projetado de um item, zero se o item não aparece no mapa.
func (s Saldos) StockOf(itemID string) decimal.Decimal {
	if q, ok := s[itemID]; ok {
		return q
	}
	return decimal.Zero
}

// ProjectCentral reduz o livro para os saldos do almoxarifado central.
// Regras de sinal: entrada +q, retorno +q, saida -q; uso não afeta o central
// (o consumo acontece na obra, depois que o item já saiu do almoxarifado).
// A soma é comutativa: o resultado independe da ordem das movimentações.
func ProjectCentral(movs []*entity.Movimentacao) Saldos {
	saldos := make(Saldos)
	for _, m := range movs {
		switch m.Type {
		case entity.MovementTypeEntrada, entity.MovementTypeRetorno:
			saldos[m.ItemID] = saldos.StockOf(m.ItemID).Add(m.Quantity)
		case entity.MovementTypeSaida:
			saldos[m.ItemID] = saldos.StockOf(m.ItemID).Sub(m.Quantity)
		}
	}
	return saldos
}

// ProjectObra reduz o livro para os saldos de uma obra específica.
// Regras de sinal: saida para a obra +q, uso na obra -q, retorno da obra -q;
// entrada não tem obra e é ignorada.
func ProjectObra(movs []*entity.Movimentacao, obraID string) Saldos {
	saldos := make(Saldos)
	for _, m := range movs {
		if m.ObraID == nil || *m.ObraID != obraID {
			continue
		}
		switch m.Type {
		case entity.MovementTypeSaida:
			saldos[m.ItemID] = saldos.StockOf(m.ItemID).Add(m.Quantity)
		case entity.MovementTypeUso, entity.MovementTypeRetorno:
			saldos[m.ItemID] = saldos.StockOf(m.ItemID).Sub(m.Quantity)
		}
	}
	return saldos
}

// FilterItemType devolve as movimentações de um tipo de item (material ou ferramenta).
func FilterItemType(movs []*entity.Movimentacao, itemType string) []*entity.Movimentacao {
	out := make([]*entity.Movimentacao, 0, len(movs))
	for _, m := range movs {
		if m.ItemType == itemType {
			out = append(out, m)
		}
	}
	return out
}

// FilterItem devolve as movimentações de um único item.
func FilterItem(movs []*entity.Movimentacao, itemID string) []*entity.Movimentacao {
	out := make([]*entity.Movimentacao, 0, len(movs))
	for _, m := range movs {
		if m.ItemID == itemID {
			out = append(out, m)
		}
	}
	return out
}

// ObraAtualDaFerramenta deriva do livro a obra onde uma ferramenta está:
// a última saída sem retorno correspondente determina a obra; saldo líquido
// zero em todas as obras significa almoxarifado central (nil). Usado para
// conferir a consistência do ponteiro desnormalizado Ferramenta.ObraAtualID.
func ObraAtualDaFerramenta(movs []*entity.Movimentacao, ferramentaID string) *string {
	net := make(map[string]decimal.Decimal)
	for _, m := range movs {
		if m.ItemID != ferramentaID || m.ObraID == nil {
			continue
		}
		switch m.Type {
		case entity.MovementTypeSaida:
			net[*m.ObraID] = net[*m.ObraID].Add(m.Quantity)
		case entity.MovementTypeRetorno:
			net[*m.ObraID] = net[*m.ObraID].Sub(m.Quantity)
		}
	}
	for obraID, q := range net {
		if q.GreaterThan(decimal.Zero) {
			id := obraID
			return &id
		}
	}
	return nil
}

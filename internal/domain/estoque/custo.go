package estoque

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/construsys/obras-api/internal/domain/entity"
)

// ConsumoMaterial é o custo consumido de um material em uma obra no período.
type ConsumoMaterial struct {
	MaterialID string
	Quantity   decimal.Decimal
	Total      decimal.Decimal // Quantity x valor unitário do material
}

// RelatorioConsumo agrega o custo de consumo de uma obra.
type RelatorioConsumo struct {
	ObraID string
	Itens  []ConsumoMaterial
	Total  decimal.Decimal
}

// CustoConsumo calcula o custo de material consumido (movimentações de uso) em
// uma obra dentro do intervalo [from, to], cruzando com o valor unitário do
// catálogo. Material sem valor cadastrado (ou ausente do catálogo) contribui
// com custo zero, nunca com erro; from/to nulos não limitam o período.
func CustoConsumo(movs []*entity.Movimentacao, materiais []*entity.Material, obraID string, from, to *time.Time) RelatorioConsumo {
	valores := make(map[string]decimal.Decimal, len(materiais))
	for _, mat := range materiais {
		valores[mat.ID] = mat.UnitValue
	}

	porMaterial := make(map[string]*ConsumoMaterial)
	ordem := make([]string, 0)
	for _, m := range movs {
		if m.Type != entity.MovementTypeUso || m.ItemType != entity.ItemTypeMaterial {
			continue
		}
		if m.ObraID == nil || *m.ObraID != obraID {
			continue
		}
		if from != nil && m.Date.Before(*from) {
			continue
		}
		if to != nil && m.Date.After(*to) {
			continue
		}
		item, ok := porMaterial[m.ItemID]
		if !ok {
			item = &ConsumoMaterial{MaterialID: m.ItemID}
			porMaterial[m.ItemID] = item
			ordem = append(ordem, m.ItemID)
		}
		item.Quantity = item.Quantity.Add(m.Quantity)
		item.Total = item.Total.Add(m.Quantity.Mul(valores[m.ItemID]))
	}

	rel := RelatorioConsumo{ObraID: obraID, Itens: make([]ConsumoMaterial, 0, len(ordem))}
	for _, id := range ordem {
		rel.Itens = append(rel.Itens, *porMaterial[id])
		rel.Total = rel.Total.Add(porMaterial[id].Total)
	}
	return rel
}

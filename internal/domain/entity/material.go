package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa um insumo consumível do catálogo (cimento, areia, vergalhão).
// A unidade (saco, m³, barra) é apenas um rótulo; não há conversão de unidades.
type Material struct {
	ID        string
	Name      string
	Unit      string          // rótulo da unidade de medida
	MinStock  decimal.Decimal // nível de alerta no almoxarifado central
	Supplier  string          // fornecedor habitual (opcional)
	UnitValue decimal.Decimal // valor unitário para relatórios de custo; zero = sem custo cadastrado
	CreatedAt time.Time
	UpdatedAt time.Time
}

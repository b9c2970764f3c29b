package estoque_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construsys/obras-api/internal/domain/entity"
	"github.com/construsys/obras-api/internal/domain/estoque"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	cimentoID   = "mat-cimento"
	areiaID     = "mat-areia"
	betoneiraID = "fer-betoneira"
	obraA       = "obra-a"
	obraB       = "obra-b"
)

func dia(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

// mov constrói uma movimentação para os testes; obraID vazio vira nil.
func mov(tipo, itemID, itemType string, qtd float64, obraID string, d int) *entity.Movimentacao {
	m := &entity.Movimentacao{
		ItemID:   itemID,
		ItemType: itemType,
		Type:     tipo,
		Quantity: decimal.NewFromFloat(qtd),
		Date:     dia(d),
	}
	if obraID != "" {
		m.ObraID = &obraID
	}
	return m
}

// livroCimento é o ciclo de vida típico de um material:
// entra 100, saem 30 para a obra A, usam-se 20 lá, voltam 10.
func livroCimento() []*entity.Movimentacao {
	return []*entity.Movimentacao{
		mov(entity.MovementTypeEntrada, cimentoID, entity.ItemTypeMaterial, 100, "", 1),
		mov(entity.MovementTypeSaida, cimentoID, entity.ItemTypeMaterial, 30, obraA, 2),
		mov(entity.MovementTypeUso, cimentoID, entity.ItemTypeMaterial, 20, obraA, 3),
		mov(entity.MovementTypeRetorno, cimentoID, entity.ItemTypeMaterial, 10, obraA, 4),
	}
}

func assertSaldo(t *testing.T, saldos estoque.Saldos, itemID string, want float64) {
	t.Helper()
	assert.True(t, saldos.StockOf(itemID).Equal(decimal.NewFromFloat(want)),
		"saldo de %s: esperado %v, obtido %s", itemID, want, saldos.StockOf(itemID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Projeção do almoxarifado central
// ──────────────────────────────────────────────────────────────────────────────

func TestProjectCentral_CicloCompletoDeMaterial(t *testing.T) {
	saldos := estoque.ProjectCentral(livroCimento())

	// 100 entram, 30 saem, 10 retornam; o uso acontece na obra e não toca o central.
	assertSaldo(t, saldos, cimentoID, 80)
}

func TestProjectCentral_UsoNaoAfetaCentral(t *testing.T) {
	movs := []*entity.Movimentacao{
		mov(entity.MovementTypeEntrada, cimentoID, entity.ItemTypeMaterial, 50, "", 1),
		mov(entity.MovementTypeSaida, cimentoID, entity.ItemTypeMaterial, 50, obraA, 2),
		mov(entity.MovementTypeUso, cimentoID, entity.ItemTypeMaterial, 50, obraA, 3),
	}
	saldos := estoque.ProjectCentral(movs)

	assertSaldo(t, saldos, cimentoID, 0)
}

func TestProjectCentral_ItemSemMovimentacaoTemSaldoZero(t *testing.T) {
	saldos := estoque.ProjectCentral(livroCimento())

	assert.True(t, saldos.StockOf("item-inexistente").IsZero())
}

func TestProjectCentral_VariosItens(t *testing.T) {
	movs := append(livroCimento(),
		mov(entity.MovementTypeEntrada, areiaID, entity.ItemTypeMaterial, 200, "", 1),
		mov(entity.MovementTypeSaida, areiaID, entity.ItemTypeMaterial, 75.5, obraB, 2),
	)
	saldos := estoque.ProjectCentral(movs)

	assertSaldo(t, saldos, cimentoID, 80)
	assertSaldo(t, saldos, areiaID, 124.5)
}

func TestProjectCentral_LivroVazio(t *testing.T) {
	saldos := estoque.ProjectCentral(nil)

	assert.Empty(t, saldos)
}

// A projeção é uma soma comutativa: qualquer permutação do livro produz o
// mesmo saldo. Cobre a garantia de independência de ordem das reduções.
func TestProjectCentral_IndependenteDaOrdem(t *testing.T) {
	base := append(livroCimento(),
		mov(entity.MovementTypeEntrada, areiaID, entity.ItemTypeMaterial, 200, "", 1),
		mov(entity.MovementTypeSaida, areiaID, entity.ItemTypeMaterial, 80, obraB, 2),
		mov(entity.MovementTypeRetorno, areiaID, entity.ItemTypeMaterial, 5, obraB, 3),
	)
	esperado := estoque.ProjectCentral(base)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		permutado := make([]*entity.Movimentacao, len(base))
		copy(permutado, base)
		rng.Shuffle(len(permutado), func(a, b int) {
			permutado[a], permutado[b] = permutado[b], permutado[a]
		})

		saldos := estoque.ProjectCentral(permutado)
		require.Len(t, saldos, len(esperado))
		for itemID, q := range esperado {
			assert.True(t, saldos.StockOf(itemID).Equal(q),
				"permutação %d divergiu no item %s", i, itemID)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Projeção por obra
// ──────────────────────────────────────────────────────────────────────────────

func TestProjectObra_CicloCompletoDeMaterial(t *testing.T) {
	saldos := estoque.ProjectObra(livroCimento(), obraA)

	// 30 chegam, 20 são consumidos, 10 retornam: a obra zera.
	assertSaldo(t, saldos, cimentoID, 0)
}

func TestProjectObra_IgnoraOutrasObras(t *testing.T) {
	movs := []*entity.Movimentacao{
		mov(entity.MovementTypeEntrada, cimentoID, entity.ItemTypeMaterial, 100, "", 1),
		mov(entity.MovementTypeSaida, cimentoID, entity.ItemTypeMaterial, 30, obraA, 2),
		mov(entity.MovementTypeSaida, cimentoID, entity.ItemTypeMaterial, 40, obraB, 2),
		mov(entity.MovementTypeUso, cimentoID, entity.ItemTypeMaterial, 15, obraB, 3),
	}

	assertSaldo(t, estoque.ProjectObra(movs, obraA), cimentoID, 30)
	assertSaldo(t, estoque.ProjectObra(movs, obraB), cimentoID, 25)
}

func TestProjectObra_EntradaNaoTemObra(t *testing.T) {
	movs := []*entity.Movimentacao{
		mov(entity.MovementTypeEntrada, cimentoID, entity.ItemTypeMaterial, 100, "", 1),
	}
	saldos := estoque.ProjectObra(movs, obraA)

	assert.True(t, saldos.StockOf(cimentoID).IsZero())
}

// Conservação: para qualquer item, central + soma dos saldos de todas as obras
// = entradas - usos. Nenhuma quantidade some nem aparece na transferência.
func TestProjecoes_ConservamQuantidade(t *testing.T) {
	movs := []*entity.Movimentacao{
		mov(entity.MovementTypeEntrada, cimentoID, entity.ItemTypeMaterial, 100, "", 1),
		mov(entity.MovementTypeSaida, cimentoID, entity.ItemTypeMaterial, 30, obraA, 2),
		mov(entity.MovementTypeSaida, cimentoID, entity.ItemTypeMaterial, 25, obraB, 2),
		mov(entity.MovementTypeUso, cimentoID, entity.ItemTypeMaterial, 20, obraA, 3),
		mov(entity.MovementTypeRetorno, cimentoID, entity.ItemTypeMaterial, 5, obraB, 4),
	}

	central := estoque.ProjectCentral(movs).StockOf(cimentoID)
	emObras := estoque.ProjectObra(movs, obraA).StockOf(cimentoID).
		Add(estoque.ProjectObra(movs, obraB).StockOf(cimentoID))

	entradas := decimal.NewFromInt(100)
	usos := decimal.NewFromInt(20)
	assert.True(t, central.Add(emObras).Equal(entradas.Sub(usos)),
		"central %s + obras %s deve igualar entradas - usos", central, emObras)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros e localização de ferramenta
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterItemType(t *testing.T) {
	movs := append(livroCimento(),
		mov(entity.MovementTypeEntrada, betoneiraID, entity.ItemTypeFerramenta, 1, "", 1),
	)

	ferramentas := estoque.FilterItemType(movs, entity.ItemTypeFerramenta)
	require.Len(t, ferramentas, 1)
	assert.Equal(t, betoneiraID, ferramentas[0].ItemID)

	materiais := estoque.FilterItemType(movs, entity.ItemTypeMaterial)
	assert.Len(t, materiais, 4)
}

func TestFilterItem(t *testing.T) {
	movs := append(livroCimento(),
		mov(entity.MovementTypeEntrada, areiaID, entity.ItemTypeMaterial, 200, "", 1),
	)

	soCimento := estoque.FilterItem(movs, cimentoID)
	require.Len(t, soCimento, 4)
	for _, m := range soCimento {
		assert.Equal(t, cimentoID, m.ItemID)
	}
}

func TestObraAtualDaFerramenta_NoCentralSemMovimentacao(t *testing.T) {
	movs := []*entity.Movimentacao{
		mov(entity.MovementTypeEntrada, betoneiraID, entity.ItemTypeFerramenta, 1, "", 1),
	}

	assert.Nil(t, estoque.ObraAtualDaFerramenta(movs, betoneiraID))
}

func TestObraAtualDaFerramenta_EmprestadaParaObra(t *testing.T) {
	movs := []*entity.Movimentacao{
		mov(entity.MovementTypeEntrada, betoneiraID, entity.ItemTypeFerramenta, 1, "", 1),
		mov(entity.MovementTypeSaida, betoneiraID, entity.ItemTypeFerramenta, 1, obraA, 2),
	}

	obra := estoque.ObraAtualDaFerramenta(movs, betoneiraID)
	require.NotNil(t, obra)
	assert.Equal(t, obraA, *obra)
}

func TestObraAtualDaFerramenta_VoltaAoCentralAposRetorno(t *testing.T) {
	movs := []*entity.Movimentacao{
		mov(entity.MovementTypeEntrada, betoneiraID, entity.ItemTypeFerramenta, 1, "", 1),
		mov(entity.MovementTypeSaida, betoneiraID, entity.ItemTypeFerramenta, 1, obraA, 2),
		mov(entity.MovementTypeRetorno, betoneiraID, entity.ItemTypeFerramenta, 1, obraA, 5),
		mov(entity.MovementTypeSaida, betoneiraID, entity.ItemTypeFerramenta, 1, obraB, 6),
	}

	obra := estoque.ObraAtualDaFerramenta(movs, betoneiraID)
	require.NotNil(t, obra)
	assert.Equal(t, obraB, *obra)
}

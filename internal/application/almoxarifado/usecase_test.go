package almoxarifado_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construsys/obras-api/internal/application/almoxarifado"
	"github.com/construsys/obras-api/internal/domain"
	"github.com/construsys/obras-api/internal/domain/entity"
	"github.com/construsys/obras-api/internal/domain/repository"
	"github.com/construsys/obras-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	cimentoID   = "mat-cimento"
	betoneiraID = "fer-betoneira"
	obraAtivaID = "obra-ativa"
	obraPausada = "obra-pausada"
)

// fixture monta um store com catálogo mínimo: um material, uma ferramenta,
// uma obra ativa e uma pausada.
func fixture(t *testing.T) (*memory.Store, *almoxarifado.RegistrarMovimentacaoUseCase) {
	t.Helper()
	store := memory.NewStore()

	require.NoError(t, store.Materiais().Create(&entity.Material{
		ID:   cimentoID,
		Name: "Cimento CP-II 50kg",
		Unit: "saco",
	}))
	require.NoError(t, store.Ferramentas().Create(&entity.Ferramenta{
		ID:     betoneiraID,
		Name:   "Betoneira 400L",
		Code:   "BET-001",
		Status: entity.ToolStatusFuncionando,
	}))
	require.NoError(t, store.Obras().Create(&entity.Obra{
		ID:     obraAtivaID,
		Name:   "Residencial Aurora",
		Status: entity.ObraStatusAtiva,
	}))
	require.NoError(t, store.Obras().Create(&entity.Obra{
		ID:     obraPausada,
		Name:   "Galpão Norte",
		Status: entity.ObraStatusPausada,
	}))

	return store, almoxarifado.NewRegistrarMovimentacaoUseCase(store)
}

func input(tipo, itemID, itemType string, qtd float64, obraID string) almoxarifado.MovimentacaoInputDTO {
	in := almoxarifado.MovimentacaoInputDTO{
		ItemID:   itemID,
		ItemType: itemType,
		Type:     tipo,
		Quantity: decimal.NewFromFloat(qtd),
		Date:     time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
	if obraID != "" {
		in.ObraID = &obraID
	}
	return in
}

// registrar emite uma movimentação que o teste espera que seja aceita.
func registrar(t *testing.T, uc *almoxarifado.RegistrarMovimentacaoUseCase, in almoxarifado.MovimentacaoInputDTO) *almoxarifado.MovimentacaoResult {
	t.Helper()
	res, err := uc.Registrar(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, res.Movimentacao)
	return res
}

func contarLivro(t *testing.T, store *memory.Store) int {
	t.Helper()
	movs, err := store.Movimentacoes().ListAll(repository.MovimentacaoFilter{})
	require.NoError(t, err)
	return len(movs)
}

func requireValidation(t *testing.T, err error, constraint string) *domain.ValidationError {
	t.Helper()
	require.Error(t, err)
	ve, ok := domain.AsValidation(err)
	require.True(t, ok, "esperado ValidationError, obtido %v", err)
	assert.Equal(t, constraint, ve.Constraint)
	return ve
}

// ──────────────────────────────────────────────────────────────────────────────
// Fluxos aceitos
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_CicloCompletoDeMaterial(t *testing.T) {
	store, uc := fixture(t)
	ctx := context.Background()

	registrar(t, uc, input(entity.MovementTypeEntrada, cimentoID, entity.ItemTypeMaterial, 100, ""))
	registrar(t, uc, input(entity.MovementTypeSaida, cimentoID, entity.ItemTypeMaterial, 30, obraAtivaID))
	registrar(t, uc, input(entity.MovementTypeUso, cimentoID, entity.ItemTypeMaterial, 20, obraAtivaID))
	res, err := uc.Registrar(ctx, input(entity.MovementTypeRetorno, cimentoID, entity.ItemTypeMaterial, 10, obraAtivaID))
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeRetorno, res.Movimentacao.Type)
	assert.Nil(t, res.Ferramenta, "material não reloca ferramenta")
	assert.Equal(t, 4, contarLivro(t, store))
}

func TestRegistrar_GeraIDECarimbaCriacao(t *testing.T) {
	_, uc := fixture(t)

	res := registrar(t, uc, input(entity.MovementTypeEntrada, cimentoID, entity.ItemTypeMaterial, 1, ""))

	assert.NotEmpty(t, res.Movimentacao.ID)
	assert.False(t, res.Movimentacao.CreatedAt.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Validações estruturais
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_RejeitaQuantidadeNaoPositiva(t *testing.T) {
	store, uc := fixture(t)

	for _, qtd := range []float64{0, -5} {
		_, err := uc.Registrar(context.Background(),
			input(entity.MovementTypeEntrada, cimentoID, entity.ItemTypeMaterial, qtd, ""))
		requireValidation(t, err, domain.ConstraintQuantidadePositiva)
	}
	assert.Equal(t, 0, contarLivro(t, store), "rejeição não pode gravar no livro")
}

func TestRegistrar_RejeitaTipoDesconhecido(t *testing.T) {
	_, uc := fixture(t)

	_, err := uc.Registrar(context.Background(),
		input("transferencia", cimentoID, entity.ItemTypeMaterial, 1, obraAtivaID))
	requireValidation(t, err, domain.ConstraintTipoMovimentacao)
}

func TestRegistrar_SaidaSemObraERejeitada(t *testing.T) {
	_, uc := fixture(t)

	_, err := uc.Registrar(context.Background(),
		input(entity.MovementTypeSaida, cimentoID, entity.ItemTypeMaterial, 1, ""))
	requireValidation(t, err, domain.ConstraintObraObrigatoria)
}

func TestRegistrar_EntradaComObraERejeitada(t *testing.T) {
	_, uc := fixture(t)

	_, err := uc.Registrar(context.Background(),
		input(entity.MovementTypeEntrada, cimentoID, entity.ItemTypeMaterial, 1, obraAtivaID))
	requireValidation(t, err, domain.ConstraintObraObrigatoria)
}

func TestRegistrar_UsoDeFerramentaERejeitado(t *testing.T) {
	_, uc := fixture(t)

	_, err := uc.Registrar(context.Background(),
		input(entity.MovementTypeUso, betoneiraID, entity.ItemTypeFerramenta, 1, obraAtivaID))
	requireValidation(t, err, domain.ConstraintUsoSomenteMaterial)
}

func TestRegistrar_ItemInexistente(t *testing.T) {
	_, uc := fixture(t)

	_, err := uc.Registrar(context.Background(),
		input(entity.MovementTypeEntrada, "mat-fantasma", entity.ItemTypeMaterial, 1, ""))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistrar_ObraInexistente(t *testing.T) {
	_, uc := fixture(t)

	registrar(t, uc, input(entity.MovementTypeEntrada, cimentoID, entity.ItemTypeMaterial, 10, ""))
	_, err := uc.Registrar(context.Background(),
		input(entity.MovementTypeSaida, cimentoID, entity.ItemTypeMaterial, 1, "obra-fantasma"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistrar_ObraPausadaNaoRecebeMovimentacao(t *testing.T) {
	store, uc := fixture(t)

	registrar(t, uc, input(entity.MovementTypeEntrada, cimentoID, entity.ItemTypeMaterial, 10, ""))
	_, err := uc.Registrar(context.Background(),
		input(entity.MovementTypeSaida, cimentoID, entity.ItemTypeMaterial, 5, obraPausada))
	requireValidation(t, err, domain.ConstraintObraAtiva)
	assert.Equal(t, 1, contarLivro(t, store))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validação de saldo projetado
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_SaidaAcimaDoSaldoCentral(t *testing.T) {
	store, uc := fixture(t)

	registrar(t, uc, input(entity.MovementTypeEntrada, cimentoID, entity.ItemTypeMaterial, 10, ""))
	_, err := uc.Registrar(context.Background(),
		input(entity.MovementTypeSaida, cimentoID, entity.ItemTypeMaterial, 11, obraAtivaID))

	ve := requireValidation(t, err, domain.ConstraintEstoqueSuficiente)
	require.NotNil(t, ve.Current, "mensagem acionável carrega o saldo projetado")
	assert.True(t, ve.Current.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 1, contarLivro(t, store), "rejeição não pode gravar no livro")
}

func TestRegistrar_UsoAcimaDoSaldoDaObra(t *testing.T) {
	_, uc := fixture(t)

	registrar(t, uc, input(entity.MovementTypeEntrada, cimentoID, entity.ItemTypeMaterial, 100, ""))
	registrar(t, uc, input(entity.MovementTypeSaida, cimentoID, entity.ItemTypeMaterial, 30, obraAtivaID))
	_, err := uc.Registrar(context.Background(),
		input(entity.MovementTypeUso, cimentoID, entity.ItemTypeMaterial, 31, obraAtivaID))

	ve := requireValidation(t, err, domain.ConstraintEstoqueSuficiente)
	require.NotNil(t, ve.Current)
	assert.True(t, ve.Current.Equal(decimal.NewFromInt(30)))
}

func TestRegistrar_RetornoAcimaDoSaldoDaObra(t *testing.T) {
	_, uc := fixture(t)

	registrar(t, uc, input(entity.MovementTypeEntrada, cimentoID, entity.ItemTypeMaterial, 100, ""))
	registrar(t, uc, input(entity.MovementTypeSaida, cimentoID, entity.ItemTypeMaterial, 30, obraAtivaID))
	registrar(t, uc, input(entity.MovementTypeUso, cimentoID, entity.ItemTypeMaterial, 20, obraAtivaID))

	_, err := uc.Registrar(context.Background(),
		input(entity.MovementTypeRetorno, cimentoID, entity.ItemTypeMaterial, 11, obraAtivaID))
	requireValidation(t, err, domain.ConstraintEstoqueSuficiente)
}

func TestRegistrar_RetornoDeObraQueNuncaRecebeuOItem(t *testing.T) {
	_, uc := fixture(t)

	// Obra ativa nunca recebeu o material: retorno de qualquer quantidade falha.
	registrar(t, uc, input(entity.MovementTypeEntrada, cimentoID, entity.ItemTypeMaterial, 100, ""))
	_, err := uc.Registrar(context.Background(),
		input(entity.MovementTypeRetorno, cimentoID, entity.ItemTypeMaterial, 1, obraAtivaID))

	ve := requireValidation(t, err, domain.ConstraintEstoqueSuficiente)
	require.NotNil(t, ve.Current)
	assert.True(t, ve.Current.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Relocação de ferramenta
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_SaidaDeFerramentaAtualizaObraAtual(t *testing.T) {
	store, uc := fixture(t)

	registrar(t, uc, input(entity.MovementTypeEntrada, betoneiraID, entity.ItemTypeFerramenta, 1, ""))
	res := registrar(t, uc, input(entity.MovementTypeSaida, betoneiraID, entity.ItemTypeFerramenta, 1, obraAtivaID))

	require.NotNil(t, res.Ferramenta)
	require.NotNil(t, res.Ferramenta.ObraAtualID)
	assert.Equal(t, obraAtivaID, *res.Ferramenta.ObraAtualID)

	persistida, err := store.Ferramentas().GetByID(betoneiraID)
	require.NoError(t, err)
	require.NotNil(t, persistida.ObraAtualID)
	assert.Equal(t, obraAtivaID, *persistida.ObraAtualID)
}

func TestRegistrar_RetornoDeFerramentaVoltaAoCentral(t *testing.T) {
	store, uc := fixture(t)

	registrar(t, uc, input(entity.MovementTypeEntrada, betoneiraID, entity.ItemTypeFerramenta, 1, ""))
	registrar(t, uc, input(entity.MovementTypeSaida, betoneiraID, entity.ItemTypeFerramenta, 1, obraAtivaID))
	res := registrar(t, uc, input(entity.MovementTypeRetorno, betoneiraID, entity.ItemTypeFerramenta, 1, obraAtivaID))

	require.NotNil(t, res.Ferramenta)
	assert.Nil(t, res.Ferramenta.ObraAtualID)

	persistida, err := store.Ferramentas().GetByID(betoneiraID)
	require.NoError(t, err)
	assert.Nil(t, persistida.ObraAtualID)
}

func TestRegistrar_SaidaRejeitadaNaoMoveFerramenta(t *testing.T) {
	store, uc := fixture(t)

	// Sem entrada prévia a ferramenta não tem saldo no central.
	_, err := uc.Registrar(context.Background(),
		input(entity.MovementTypeSaida, betoneiraID, entity.ItemTypeFerramenta, 1, obraAtivaID))
	requireValidation(t, err, domain.ConstraintEstoqueSuficiente)

	persistida, gerr := store.Ferramentas().GetByID(betoneiraID)
	require.NoError(t, gerr)
	assert.Nil(t, persistida.ObraAtualID, "ponteiro não muda quando o livro não muda")
	assert.Equal(t, 0, contarLivro(t, store))
}

// ──────────────────────────────────────────────────────────────────────────────
// Entrada sintetizada no cadastro de ferramenta
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarEntradaInTx_GravaEntradaSemObra(t *testing.T) {
	store, uc := fixture(t)

	mov, err := uc.RegistrarEntradaInTx(store.Movimentacoes(),
		betoneiraID, entity.ItemTypeFerramenta, decimal.NewFromInt(2), "cadastro inicial")
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeEntrada, mov.Type)
	assert.Nil(t, mov.ObraID)
	assert.Equal(t, 1, contarLivro(t, store))
}

func TestRegistrarEntradaInTx_RejeitaQuantidadeZero(t *testing.T) {
	store, uc := fixture(t)

	_, err := uc.RegistrarEntradaInTx(store.Movimentacoes(),
		betoneiraID, entity.ItemTypeFerramenta, decimal.Zero, "cadastro inicial")
	requireValidation(t, err, domain.ConstraintQuantidadePositiva)
	assert.Equal(t, 0, contarLivro(t, store))
}

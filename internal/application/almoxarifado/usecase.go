package almoxarifado

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construsys/obras-api/internal/domain"
	"github.com/construsys/obras-api/internal/domain/entity"
	"github.com/construsys/obras-api/internal/domain/estoque"
	"github.com/construsys/obras-api/internal/domain/repository"
)

// RegistrarMovimentacaoUseCase é o caminho de escrita do livro: valida a
// movimentação proposta contra o saldo projetado e as regras de negócio,
// faz o append e, quando é relocação de ferramenta, atualiza o ponteiro de
// obra atual — tudo dentro de uma única transação com bloqueio de linha
// (SELECT FOR UPDATE) no item, o que serializa emissores concorrentes sobre
// o mesmo item e fecha a janela entre leitura do saldo e gravação.
type RegistrarMovimentacaoUseCase struct {
	txRunner TxRunner
}

// NewRegistrarMovimentacaoUseCase constrói o caso de uso.
func NewRegistrarMovimentacaoUseCase(txRunner TxRunner) *RegistrarMovimentacaoUseCase {
	return &RegistrarMovimentacaoUseCase{txRunner: txRunner}
}

// MovimentacaoInputDTO entrada para registrar uma movimentação.
// ObraID obrigatória para saida/uso/retorno; ResponsavelID opcional (saída).
type MovimentacaoInputDTO struct {
	ItemID        string
	ItemType      string
	Type          string
	Quantity      decimal.Decimal
	Date          time.Time
	ObraID        *string
	ResponsavelID *string
	Description   string
}

// MovimentacaoResult resultado de uma emissão bem-sucedida.
// Ferramenta vem preenchida quando a movimentação relocou uma ferramenta.
type MovimentacaoResult struct {
	Movimentacao *entity.Movimentacao
	Ferramenta   *entity.Ferramenta
}

// Registrar valida e grava uma movimentação. Em caso de falha de validação
// devolve *domain.ValidationError (ou domain.ErrNotFound) e nada é gravado.
func (uc *RegistrarMovimentacaoUseCase) Registrar(ctx context.Context, input MovimentacaoInputDTO) (*MovimentacaoResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var result MovimentacaoResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		materialRepo repository.MaterialRepository,
		ferramentaRepo repository.FerramentaRepository,
		obraRepo repository.ObraRepository,
	) error {
		// Bloqueia a linha do item no catálogo: emissões concorrentes sobre o
		// mesmo item esperam aqui até o commit da transação anterior.
		var ferramenta *entity.Ferramenta
		switch input.ItemType {
		case entity.ItemTypeMaterial:
			mat, err := materialRepo.GetForUpdate(input.ItemID)
			if err != nil {
				return err
			}
			if mat == nil {
				return domain.ErrNotFound
			}
		case entity.ItemTypeFerramenta:
			fer, err := ferramentaRepo.GetForUpdate(input.ItemID)
			if err != nil {
				return err
			}
			if fer == nil {
				return domain.ErrNotFound
			}
			ferramenta = fer
		}

		if entity.RequiresObra(input.Type) {
			obra, err := obraRepo.GetByID(*input.ObraID)
			if err != nil {
				return err
			}
			if obra == nil {
				return domain.ErrNotFound
			}
			if !obra.IsActive() {
				return domain.NewValidationError(domain.ConstraintObraAtiva,
					"obra de destino não está ativa")
			}
		}

		// Projeta o saldo da origem a partir do livro do item, já sob o lock.
		ledger, err := movRepo.ListByItem(input.ItemID)
		if err != nil {
			return err
		}
		if err := validateSaldo(input, ledger); err != nil {
			return err
		}

		mov := &entity.Movimentacao{
			ID:            uuid.New().String(),
			ItemID:        input.ItemID,
			ItemType:      input.ItemType,
			Type:          input.Type,
			Quantity:      input.Quantity,
			Date:          input.Date,
			ObraID:        input.ObraID,
			ResponsavelID: input.ResponsavelID,
			Description:   input.Description,
			CreatedAt:     time.Now(),
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		result.Movimentacao = mov

		// Relocação de ferramenta: saída aponta para a obra, retorno devolve
		// ao central. Mesma transação do append — nunca divergem.
		if ferramenta != nil {
			switch input.Type {
			case entity.MovementTypeSaida:
				ferramenta.ObraAtualID = input.ObraID
			case entity.MovementTypeRetorno:
				ferramenta.ObraAtualID = nil
			default:
				return nil
			}
			if err := ferramentaRepo.UpdateObraAtual(ferramenta.ID, ferramenta.ObraAtualID); err != nil {
				return err
			}
			result.Ferramenta = ferramenta
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RegistrarEntradaInTx grava uma entrada sintetizada usando o repositório da
// transação do chamador. Usado pelo cadastro de ferramenta com quantidade
// inicial maior que zero.
func (uc *RegistrarMovimentacaoUseCase) RegistrarEntradaInTx(
	movRepo repository.MovimentacaoRepository,
	itemID, itemType string,
	quantity decimal.Decimal,
	description string,
) (*entity.Movimentacao, error) {
	if !quantity.GreaterThan(decimal.Zero) {
		return nil, domain.NewValidationError(domain.ConstraintQuantidadePositiva,
			"quantidade deve ser maior que zero")
	}
	now := time.Now()
	mov := &entity.Movimentacao{
		ID:          uuid.New().String(),
		ItemID:      itemID,
		ItemType:    itemType,
		Type:        entity.MovementTypeEntrada,
		Quantity:    quantity,
		Date:        now,
		Description: description,
		CreatedAt:   now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// validateInput checa as precondições estruturais, antes de abrir transação.
func validateInput(input MovimentacaoInputDTO) error {
	if input.ItemID == "" {
		return domain.NewValidationError(domain.ConstraintItemObrigatorio,
			"item da movimentação é obrigatório")
	}
	if input.ItemType != entity.ItemTypeMaterial && input.ItemType != entity.ItemTypeFerramenta {
		return domain.NewValidationError(domain.ConstraintItemObrigatorio,
			"tipo de item deve ser material ou ferramenta")
	}
	if !entity.IsValidMovementType(input.Type) {
		return domain.NewValidationError(domain.ConstraintTipoMovimentacao,
			"tipo de movimentação desconhecido")
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return domain.NewValidationError(domain.ConstraintQuantidadePositiva,
			"quantidade deve ser maior que zero")
	}
	if entity.RequiresObra(input.Type) && (input.ObraID == nil || *input.ObraID == "") {
		return domain.NewValidationError(domain.ConstraintObraObrigatoria,
			"movimentação de "+input.Type+" exige obra de destino/origem")
	}
	if input.Type == entity.MovementTypeEntrada && input.ObraID != nil {
		return domain.NewValidationError(domain.ConstraintObraObrigatoria,
			"entrada não tem obra associada")
	}
	if input.Type == entity.MovementTypeUso && input.ItemType != entity.ItemTypeMaterial {
		return domain.NewValidationError(domain.ConstraintUsoSomenteMaterial,
			"uso só se aplica a materiais")
	}
	return nil
}

// validateSaldo confere que a quantidade não excede o saldo projetado na origem:
// central para saída, obra para uso e retorno. Entrada não tem origem interna.
func validateSaldo(input MovimentacaoInputDTO, ledger []*entity.Movimentacao) error {
	var saldo decimal.Decimal
	switch input.Type {
	case entity.MovementTypeEntrada:
		return nil
	case entity.MovementTypeSaida:
		saldo = estoque.ProjectCentral(ledger).StockOf(input.ItemID)
	case entity.MovementTypeUso, entity.MovementTypeRetorno:
		saldo = estoque.ProjectObra(ledger, *input.ObraID).StockOf(input.ItemID)
	}
	if input.Quantity.GreaterThan(saldo) {
		return domain.NewStockValidationError(domain.ConstraintEstoqueSuficiente,
			"estoque insuficiente na origem", saldo)
	}
	return nil
}

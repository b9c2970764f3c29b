package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construsys/obras-api/internal/application/almoxarifado"
	"github.com/construsys/obras-api/internal/application/dto"
	"github.com/construsys/obras-api/internal/domain"
	"github.com/construsys/obras-api/internal/domain/entity"
	"github.com/construsys/obras-api/internal/domain/repository"
)

// FerramentaUseCase casos de uso do catálogo de ferramentas. O cadastro com
// quantidade inicial maior que zero sintetiza uma entrada no livro, na mesma
// transação do insert do catálogo.
type FerramentaUseCase struct {
	repo     repository.FerramentaRepository
	txRunner almoxarifado.TxRunner
	emissor  *almoxarifado.RegistrarMovimentacaoUseCase
}

// NewFerramentaUseCase constrói o caso de uso.
func NewFerramentaUseCase(
	repo repository.FerramentaRepository,
	txRunner almoxarifado.TxRunner,
	emissor *almoxarifado.RegistrarMovimentacaoUseCase,
) *FerramentaUseCase {
	return &FerramentaUseCase{repo: repo, txRunner: txRunner, emissor: emissor}
}

// Create cadastra uma ferramenta; InitialQuantity > 0 gera a entrada sintetizada.
func (uc *FerramentaUseCase) Create(ctx context.Context, in dto.CreateFerramentaRequest) (*dto.FerramentaResponse, error) {
	if in.Name == "" || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ToolStatusFuncionando
	}
	if !entity.IsValidToolStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ferramenta := &entity.Ferramenta{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Code:      in.Code,
		Status:    status,
		UnitValue: in.UnitValue,
		MinStock:  in.MinStock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		_ repository.MaterialRepository,
		ferramentaRepo repository.FerramentaRepository,
		_ repository.ObraRepository,
	) error {
		if err := ferramentaRepo.Create(ferramenta); err != nil {
			return err
		}
		if in.InitialQuantity.GreaterThan(decimal.Zero) {
			_, err := uc.emissor.RegistrarEntradaInTx(
				movRepo, ferramenta.ID, entity.ItemTypeFerramenta,
				in.InitialQuantity, "carga inicial de cadastro",
			)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToFerramentaResponse(ferramenta), nil
}

// GetByID obtém uma ferramenta por ID.
func (uc *FerramentaUseCase) GetByID(id string) (*dto.FerramentaResponse, error) {
	ferramenta, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ferramenta == nil {
		return nil, nil
	}
	return ToFerramentaResponse(ferramenta), nil
}

// List lista ferramentas com paginação.
func (uc *FerramentaUseCase) List(limit, offset int) (*dto.FerramentaListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FerramentaResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *ToFerramentaResponse(f))
	}
	return &dto.FerramentaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ToFerramentaResponse converte a entidade para o DTO de resposta.
func ToFerramentaResponse(f *entity.Ferramenta) *dto.FerramentaResponse {
	if f == nil {
		return nil
	}
	return &dto.FerramentaResponse{
		ID:          f.ID,
		Name:        f.Name,
		Code:        f.Code,
		Status:      f.Status,
		UnitValue:   f.UnitValue,
		MinStock:    f.MinStock,
		ObraAtualID: f.ObraAtualID,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// UpdateStatus altera a situação de catálogo (funcionando/manutencao/descartada).
func (uc *FerramentaUseCase) UpdateStatus(id, status string) (*dto.FerramentaResponse, error) {
	if !entity.IsValidToolStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	ferramenta, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ferramenta == nil {
		return nil, nil
	}
	ferramenta.Status = status
	ferramenta.UpdatedAt = time.Now()
	if err := uc.repo.Update(ferramenta); err != nil {
		return nil, err
	}
	return ToFerramentaResponse(ferramenta), nil
}

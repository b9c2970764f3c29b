package usecase

import (
	"time"

	"github.com/construsys/obras-api/internal/application/dto"
	"github.com/construsys/obras-api/internal/domain"
	"github.com/construsys/obras-api/internal/domain/entity"
	"github.com/construsys/obras-api/internal/domain/estoque"
	"github.com/construsys/obras-api/internal/domain/repository"
)

// RelatorioUseCase relatórios derivados do livro (somente leitura).
type RelatorioUseCase struct {
	movRepo      repository.MovimentacaoRepository
	materialRepo repository.MaterialRepository
	obraRepo     repository.ObraRepository
}

// NewRelatorioUseCase constrói o caso de uso.
func NewRelatorioUseCase(
	movRepo repository.MovimentacaoRepository,
	materialRepo repository.MaterialRepository,
	obraRepo repository.ObraRepository,
) *RelatorioUseCase {
	return &RelatorioUseCase{movRepo: movRepo, materialRepo: materialRepo, obraRepo: obraRepo}
}

// Consumo calcula o custo de material consumido em uma obra no período.
// from/to no formato YYYY-MM-DD; vazios não limitam o período. Material sem
// valor unitário cadastrado contribui com custo zero.
func (uc *RelatorioUseCase) Consumo(obraID, fromStr, toStr string) (*dto.RelatorioConsumoResponse, error) {
	obra, err := uc.obraRepo.GetByID(obraID)
	if err != nil {
		return nil, err
	}
	if obra == nil {
		return nil, domain.ErrNotFound
	}

	from, err := parseDate(fromStr)
	if err != nil {
		return nil, err
	}
	to, err := parseDate(toStr)
	if err != nil {
		return nil, err
	}

	movs, err := uc.movRepo.ListAll(repository.MovimentacaoFilter{
		ObraID: obraID,
		Type:   entity.MovementTypeUso,
	})
	if err != nil {
		return nil, err
	}
	materiais, err := uc.materialRepo.List(listAllLimit, 0)
	if err != nil {
		return nil, err
	}

	rel := estoque.CustoConsumo(movs, materiais, obraID, from, to)

	nomes := make(map[string]*entity.Material, len(materiais))
	for _, m := range materiais {
		nomes[m.ID] = m
	}
	items := make([]dto.ConsumoItemDTO, 0, len(rel.Itens))
	for _, item := range rel.Itens {
		out := dto.ConsumoItemDTO{
			MaterialID: item.MaterialID,
			Quantity:   item.Quantity,
			Total:      item.Total,
		}
		if m, ok := nomes[item.MaterialID]; ok {
			out.MaterialName = m.Name
			out.Unit = m.Unit
		}
		items = append(items, out)
	}
	return &dto.RelatorioConsumoResponse{
		ObraID: obraID,
		From:   fromStr,
		To:     toStr,
		Items:  items,
		Total:  rel.Total,
	}, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return nil, domain.NewValidationError(domain.ConstraintDataValida,
			"data inválida, use o formato YYYY-MM-DD")
	}
	return &t, nil
}

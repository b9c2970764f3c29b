package usecase

import (
	"github.com/construsys/obras-api/internal/application/dto"
	"github.com/construsys/obras-api/internal/domain/entity"
	"github.com/construsys/obras-api/internal/domain/estoque"
	"github.com/construsys/obras-api/internal/domain/repository"
)

// EstoqueUseCase consultas de saldo: página do almoxarifado central, páginas
// de materiais/ferramentas por obra e visão agregada do dashboard. Todo saldo
// é projetado do livro completo a cada chamada; nada é materializado.
type EstoqueUseCase struct {
	movRepo        repository.MovimentacaoRepository
	materialRepo   repository.MaterialRepository
	ferramentaRepo repository.FerramentaRepository
	obraRepo       repository.ObraRepository
}

// NewEstoqueUseCase constrói o caso de uso.
func NewEstoqueUseCase(
	movRepo repository.MovimentacaoRepository,
	materialRepo repository.MaterialRepository,
	ferramentaRepo repository.FerramentaRepository,
	obraRepo repository.ObraRepository,
) *EstoqueUseCase {
	return &EstoqueUseCase{
		movRepo:        movRepo,
		materialRepo:   materialRepo,
		ferramentaRepo: ferramentaRepo,
		obraRepo:       obraRepo,
	}
}

// EstoqueCentral projeta o saldo do almoxarifado central para todos os itens
// do catálogo, com flag de estoque abaixo do mínimo.
func (uc *EstoqueUseCase) EstoqueCentral() (*dto.EstoqueResponse, error) {
	movs, err := uc.movRepo.ListAll(repository.MovimentacaoFilter{})
	if err != nil {
		return nil, err
	}
	saldos := estoque.ProjectCentral(movs)

	items, err := uc.saldosDoCatalogo(saldos, "")
	if err != nil {
		return nil, err
	}
	return &dto.EstoqueResponse{Scope: "central", Items: items}, nil
}

// EstoqueObra projeta o saldo de uma obra, opcionalmente filtrado por tipo de
// item (página de materiais ou página de ferramentas da obra).
func (uc *EstoqueUseCase) EstoqueObra(obraID, itemType string) (*dto.EstoqueResponse, error) {
	obra, err := uc.obraRepo.GetByID(obraID)
	if err != nil {
		return nil, err
	}
	if obra == nil {
		return nil, nil
	}
	movs, err := uc.movRepo.ListAll(repository.MovimentacaoFilter{ObraID: obraID})
	if err != nil {
		return nil, err
	}
	if itemType != "" {
		movs = estoque.FilterItemType(movs, itemType)
	}
	saldos := estoque.ProjectObra(movs, obraID)

	items, err := uc.saldosDoCatalogo(saldos, itemType)
	if err != nil {
		return nil, err
	}
	return &dto.EstoqueResponse{Scope: obraID, Items: items}, nil
}

// Dashboard visão agregada: tamanho dos catálogos, itens do central abaixo do
// mínimo e totais alocados por obra ativa.
func (uc *EstoqueUseCase) Dashboard() (*dto.DashboardAlmoxarifadoResponse, error) {
	movs, err := uc.movRepo.ListAll(repository.MovimentacaoFilter{})
	if err != nil {
		return nil, err
	}
	materiais, err := uc.materialRepo.List(listAllLimit, 0)
	if err != nil {
		return nil, err
	}
	ferramentas, err := uc.ferramentaRepo.List(listAllLimit, 0)
	if err != nil {
		return nil, err
	}
	obras, err := uc.obraRepo.ListAtivas()
	if err != nil {
		return nil, err
	}

	central := estoque.ProjectCentral(movs)
	abaixo := make([]dto.SaldoItemDTO, 0)
	for _, m := range materiais {
		q := central.StockOf(m.ID)
		if q.LessThan(m.MinStock) {
			abaixo = append(abaixo, dto.SaldoItemDTO{
				ItemID:   m.ID,
				ItemType: entity.ItemTypeMaterial,
				Name:     m.Name,
				Unit:     m.Unit,
				Quantity: q,
				MinStock: m.MinStock,
				BelowMin: true,
			})
		}
	}

	porObra := make([]dto.ObraSaldoDTO, 0, len(obras))
	for _, o := range obras {
		saldos := estoque.ProjectObra(movs, o.ID)
		item := dto.ObraSaldoDTO{ObraID: o.ID, ObraName: o.Name}
		for id, q := range saldos {
			switch itemTypeOf(movs, id) {
			case entity.ItemTypeMaterial:
				item.Materiais = item.Materiais.Add(q)
			case entity.ItemTypeFerramenta:
				item.Ferramentas = item.Ferramentas.Add(q)
			}
		}
		porObra = append(porObra, item)
	}

	return &dto.DashboardAlmoxarifadoResponse{
		TotalMateriais:   len(materiais),
		TotalFerramentas: len(ferramentas),
		AbaixoMinimo:     abaixo,
		Obras:            porObra,
	}, nil
}

// ListMovimentacoes listagem paginada do livro com filtros.
func (uc *EstoqueUseCase) ListMovimentacoes(filter repository.MovimentacaoFilter, limit, offset int) (*dto.MovimentacaoListResponse, error) {
	list, err := uc.movRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimentacaoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, ToMovimentacaoResponse(m))
	}
	return &dto.MovimentacaoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// limite generoso para leituras de catálogo completas (dashboard e páginas de estoque).
const listAllLimit = 10000

// saldosDoCatalogo junta um mapa de saldos com os catálogos, devolvendo uma
// linha por item do catálogo (itens sem movimentação aparecem com saldo zero).
func (uc *EstoqueUseCase) saldosDoCatalogo(saldos estoque.Saldos, itemType string) ([]dto.SaldoItemDTO, error) {
	items := make([]dto.SaldoItemDTO, 0)

	if itemType == "" || itemType == entity.ItemTypeMaterial {
		materiais, err := uc.materialRepo.List(listAllLimit, 0)
		if err != nil {
			return nil, err
		}
		for _, m := range materiais {
			q := saldos.StockOf(m.ID)
			items = append(items, dto.SaldoItemDTO{
				ItemID:   m.ID,
				ItemType: entity.ItemTypeMaterial,
				Name:     m.Name,
				Unit:     m.Unit,
				Quantity: q,
				MinStock: m.MinStock,
				BelowMin: q.LessThan(m.MinStock),
			})
		}
	}

	if itemType == "" || itemType == entity.ItemTypeFerramenta {
		ferramentas, err := uc.ferramentaRepo.List(listAllLimit, 0)
		if err != nil {
			return nil, err
		}
		for _, f := range ferramentas {
			q := saldos.StockOf(f.ID)
			items = append(items, dto.SaldoItemDTO{
				ItemID:   f.ID,
				ItemType: entity.ItemTypeFerramenta,
				Name:     f.Name,
				Code:     f.Code,
				Quantity: q,
				MinStock: f.MinStock,
				BelowMin: q.LessThan(f.MinStock),
			})
		}
	}
	return items, nil
}

// itemTypeOf descobre o tipo de item pelo livro (toda movimentação carrega o tipo).
func itemTypeOf(movs []*entity.Movimentacao, itemID string) string {
	for _, m := range movs {
		if m.ItemID == itemID {
			return m.ItemType
		}
	}
	return ""
}

// ToMovimentacaoResponse converte a entidade para o DTO de resposta.
func ToMovimentacaoResponse(m *entity.Movimentacao) dto.MovimentacaoResponse {
	return dto.MovimentacaoResponse{
		ID:            m.ID,
		ItemID:        m.ItemID,
		ItemType:      m.ItemType,
		Type:          m.Type,
		Quantity:      m.Quantity,
		Date:          m.Date.Format(dto.DateLayout),
		ObraID:        m.ObraID,
		ResponsavelID: m.ResponsavelID,
		Description:   m.Description,
	}
}

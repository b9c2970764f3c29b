package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/construsys/obras-api/internal/application/dto"
	"github.com/construsys/obras-api/internal/application/usecase"
	"github.com/construsys/obras-api/internal/domain/entity"
)

// EstoqueHandler trata as páginas de saldo: almoxarifado central, estoque por
// obra e dashboard agregado.
type EstoqueHandler struct {
	estoque   *usecase.EstoqueUseCase
	relatorio *usecase.RelatorioUseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(estoque *usecase.EstoqueUseCase, relatorio *usecase.RelatorioUseCase) *EstoqueHandler {
	return &EstoqueHandler{estoque: estoque, relatorio: relatorio}
}

// EstoqueCentral godoc
// @Summary      Saldo do almoxarifado central
// @Description  Projeta o livro completo para o escopo central; uma linha por
//
//	item do catálogo, com flag de estoque abaixo do mínimo.
//
// @Tags         almoxarifado
// @Produce      json
// @Success      200  {object}  dto.EstoqueResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/almoxarifado/estoque [get]
func (h *EstoqueHandler) EstoqueCentral(c *fiber.Ctx) error {
	resp, err := h.estoque.EstoqueCentral()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// EstoqueObraMateriais godoc
// @Summary      Saldo de materiais de uma obra
// @Tags         obras
// @Produce      json
// @Param        id  path  string  true  "ID da obra"
// @Success      200  {object}  dto.EstoqueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obras/{id}/estoque/materiais [get]
func (h *EstoqueHandler) EstoqueObraMateriais(c *fiber.Ctx) error {
	return h.estoqueObra(c, entity.ItemTypeMaterial)
}

// EstoqueObraFerramentas godoc
// @Summary      Ferramentas alocadas em uma obra
// @Tags         obras
// @Produce      json
// @Param        id  path  string  true  "ID da obra"
// @Success      200  {object}  dto.EstoqueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obras/{id}/estoque/ferramentas [get]
func (h *EstoqueHandler) EstoqueObraFerramentas(c *fiber.Ctx) error {
	return h.estoqueObra(c, entity.ItemTypeFerramenta)
}

func (h *EstoqueHandler) estoqueObra(c *fiber.Ctx, itemType string) error {
	resp, err := h.estoque.EstoqueObra(c.Params("id"), itemType)
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "obra não encontrada"})
	}
	return c.JSON(resp)
}

// Dashboard godoc
// @Summary      Visão agregada do almoxarifado
// @Description  Tamanho dos catálogos, itens abaixo do mínimo no central e
//
//	totais alocados por obra ativa.
//
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardAlmoxarifadoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/almoxarifado [get]
func (h *EstoqueHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.estoque.Dashboard()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// RelatorioConsumo godoc
// @Summary      Relatório de custo de consumo por obra
// @Description  Soma quantidade x valor unitário das movimentações de uso da
//
//	obra no período; material sem valor cadastrado contribui com zero.
//
// @Tags         relatorios
// @Produce      json
// @Param        obra_id  query  string  true   "ID da obra"
// @Param        from     query  string  false  "Data inicial YYYY-MM-DD"
// @Param        to       query  string  false  "Data final YYYY-MM-DD"
// @Success      200  {object}  dto.RelatorioConsumoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/relatorios/consumo [get]
func (h *EstoqueHandler) RelatorioConsumo(c *fiber.Ctx) error {
	obraID := c.Query("obra_id")
	if obraID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "obra_id é obrigatório"})
	}
	resp, err := h.relatorio.Consumo(obraID, c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

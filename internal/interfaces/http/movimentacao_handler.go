package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/construsys/obras-api/internal/application/almoxarifado"
	"github.com/construsys/obras-api/internal/application/dto"
	"github.com/construsys/obras-api/internal/application/usecase"
	"github.com/construsys/obras-api/internal/domain/repository"
)

// MovimentacaoHandler trata as requisições do livro de movimentações.
type MovimentacaoHandler struct {
	emissor *almoxarifado.RegistrarMovimentacaoUseCase
	estoque *usecase.EstoqueUseCase
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(emissor *almoxarifado.RegistrarMovimentacaoUseCase, estoque *usecase.EstoqueUseCase) *MovimentacaoHandler {
	return &MovimentacaoHandler{emissor: emissor, estoque: estoque}
}

// Registrar godoc
// @Summary      Registrar movimentação do almoxarifado
// @Description  Valida contra o saldo projetado e faz o append no livro; saída/retorno
//
//	de ferramenta atualiza o ponteiro de obra na mesma transação.
//
// @Tags         almoxarifado
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimentacaoRequest  true  "item_id, item_type, type, quantity, obra_id (saida/uso/retorno)"
// @Success      201  {object}  dto.RegistrarMovimentacaoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/almoxarifado/movimentacoes [post]
func (h *MovimentacaoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	result, err := h.emissor.RegistrarFromRequest(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	resp := dto.RegistrarMovimentacaoResponse{
		Movimentacao: usecase.ToMovimentacaoResponse(result.Movimentacao),
	}
	if result.Ferramenta != nil {
		resp.Ferramenta = usecase.ToFerramentaResponse(result.Ferramenta)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar o livro de movimentações
// @Tags         almoxarifado
// @Produce      json
// @Param        item_id    query  string  false  "Filtrar por item"
// @Param        item_type  query  string  false  "material | ferramenta"
// @Param        type       query  string  false  "entrada | saida | uso | retorno"
// @Param        obra_id    query  string  false  "Filtrar por obra"
// @Param        from       query  string  false  "Data inicial YYYY-MM-DD"
// @Param        to         query  string  false  "Data final YYYY-MM-DD"
// @Success      200  {object}  dto.MovimentacaoListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/almoxarifado/movimentacoes [get]
func (h *MovimentacaoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	page.DefaultPage()

	filter := repository.MovimentacaoFilter{
		ItemID:   c.Query("item_id"),
		ItemType: c.Query("item_type"),
		Type:     c.Query("type"),
		ObraID:   c.Query("obra_id"),
	}
	var err error
	if filter.From, err = parseDateQuery(c.Query("from")); err != nil {
		return respondError(c, err)
	}
	if filter.To, err = parseDateQuery(c.Query("to")); err != nil {
		return respondError(c, err)
	}

	list, err := h.estoque.ListMovimentacoes(filter, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// parseDateQuery converte um parâmetro YYYY-MM-DD; vazio devolve nil.
func parseDateQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return nil, errInvalidDate
	}
	return &t, nil
}

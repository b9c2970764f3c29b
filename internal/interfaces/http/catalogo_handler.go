package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/construsys/obras-api/internal/application/dto"
	"github.com/construsys/obras-api/internal/application/usecase"
)

// MaterialHandler trata o catálogo de materiais.
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

// NewMaterialHandler constrói o handler.
func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar material
// @Tags         materiais
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "name, unit, min_stock"
// @Success      201  {object}  dto.MaterialResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/materiais [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obter material
// @Tags         materiais
// @Produce      json
// @Param        id  path  string  true  "ID do material"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materiais/{id} [get]
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material não encontrado"})
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar materiais
// @Tags         materiais
// @Produce      json
// @Param        limit   query  int  false  "Tamanho da página"
// @Param        offset  query  int  false  "Deslocamento"
// @Success      200  {object}  dto.MaterialListResponse
// @Router       /api/materiais [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	page.DefaultPage()
	resp, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// FerramentaHandler trata o catálogo de ferramentas.
type FerramentaHandler struct {
	uc *usecase.FerramentaUseCase
}

// NewFerramentaHandler constrói o handler.
func NewFerramentaHandler(uc *usecase.FerramentaUseCase) *FerramentaHandler {
	return &FerramentaHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar ferramenta
// @Description  initial_quantity > 0 sintetiza uma entrada no livro, na mesma transação.
// @Tags         ferramentas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFerramentaRequest  true  "name, code, initial_quantity"
// @Success      201  {object}  dto.FerramentaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ferramentas [post]
func (h *FerramentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFerramentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obter ferramenta (com localização atual)
// @Tags         ferramentas
// @Produce      json
// @Param        id  path  string  true  "ID da ferramenta"
// @Success      200  {object}  dto.FerramentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ferramentas/{id} [get]
func (h *FerramentaHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ferramenta não encontrada"})
	}
	return c.JSON(resp)
}

// UpdateStatus godoc
// @Summary      Mudar situação de catálogo da ferramenta
// @Tags         ferramentas
// @Accept       json
// @Produce      json
// @Param        id    path  string                             true  "ID da ferramenta"
// @Param        body  body  dto.UpdateFerramentaStatusRequest  true  "funcionando | manutencao | descartada"
// @Success      200  {object}  dto.FerramentaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ferramentas/{id}/status [patch]
func (h *FerramentaHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateFerramentaStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ferramenta não encontrada"})
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar ferramentas
// @Tags         ferramentas
// @Produce      json
// @Param        limit   query  int  false  "Tamanho da página"
// @Param        offset  query  int  false  "Deslocamento"
// @Success      200  {object}  dto.FerramentaListResponse
// @Router       /api/ferramentas [get]
func (h *FerramentaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	page.DefaultPage()
	resp, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ObraHandler trata o catálogo de obras.
type ObraHandler struct {
	uc *usecase.ObraUseCase
}

// NewObraHandler constrói o handler.
func NewObraHandler(uc *usecase.ObraUseCase) *ObraHandler {
	return &ObraHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar obra
// @Tags         obras
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateObraRequest  true  "name, address"
// @Success      201  {object}  dto.ObraResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/obras [post]
func (h *ObraHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateObraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateStatus godoc
// @Summary      Mudar situação da obra
// @Description  Obras pausadas ou concluídas deixam de aceitar movimentações.
// @Tags         obras
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID da obra"
// @Param        body  body  dto.UpdateObraStatusRequest  true  "ativa | pausada | concluida"
// @Success      200  {object}  dto.ObraResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obras/{id}/status [patch]
func (h *ObraHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateObraStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	resp, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "obra não encontrada"})
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obter obra
// @Tags         obras
// @Produce      json
// @Param        id  path  string  true  "ID da obra"
// @Success      200  {object}  dto.ObraResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obras/{id} [get]
func (h *ObraHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "obra não encontrada"})
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar obras
// @Tags         obras
// @Produce      json
// @Param        limit   query  int  false  "Tamanho da página"
// @Param        offset  query  int  false  "Deslocamento"
// @Success      200  {object}  dto.ObraListResponse
// @Router       /api/obras [get]
func (h *ObraHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	page.DefaultPage()
	resp, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/construsys/obras-api/internal/application/almoxarifado"
	"github.com/construsys/obras-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	MaterialUC   *usecase.MaterialUseCase
	FerramentaUC *usecase.FerramentaUseCase
	ObraUC       *usecase.ObraUseCase
	EstoqueUC    *usecase.EstoqueUseCase
	RelatorioUC  *usecase.RelatorioUseCase
	Emissor      *almoxarifado.RegistrarMovimentacaoUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Livro de movimentações (emissor + listagem)
	alm := api.Group("/almoxarifado")
	movHandler := NewMovimentacaoHandler(deps.Emissor, deps.EstoqueUC)
	alm.Post("/movimentacoes", movHandler.Registrar)
	alm.Get("/movimentacoes", movHandler.List)

	// Páginas de saldo
	estoqueHandler := NewEstoqueHandler(deps.EstoqueUC, deps.RelatorioUC)
	alm.Get("/estoque", estoqueHandler.EstoqueCentral)

	// Catálogo de materiais
	materiais := api.Group("/materiais")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materiais.Post("/", materialHandler.Create)
	materiais.Get("/", materialHandler.List)
	materiais.Get("/:id", materialHandler.GetByID)

	// Catálogo de ferramentas
	ferramentas := api.Group("/ferramentas")
	ferramentaHandler := NewFerramentaHandler(deps.FerramentaUC)
	ferramentas.Post("/", ferramentaHandler.Create)
	ferramentas.Get("/", ferramentaHandler.List)
	ferramentas.Get("/:id", ferramentaHandler.GetByID)
	ferramentas.Patch("/:id/status", ferramentaHandler.UpdateStatus)

	// Obras e estoque por obra
	obras := api.Group("/obras")
	obraHandler := NewObraHandler(deps.ObraUC)
	obras.Post("/", obraHandler.Create)
	obras.Get("/", obraHandler.List)
	obras.Get("/:id", obraHandler.GetByID)
	obras.Patch("/:id/status", obraHandler.UpdateStatus)
	obras.Get("/:id/estoque/materiais", estoqueHandler.EstoqueObraMateriais)
	obras.Get("/:id/estoque/ferramentas", estoqueHandler.EstoqueObraFerramentas)

	// Dashboard e relatórios
	api.Get("/dashboard/almoxarifado", estoqueHandler.Dashboard)
	api.Get("/relatorios/consumo", estoqueHandler.RelatorioConsumo)
}

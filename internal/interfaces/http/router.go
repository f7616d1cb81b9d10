package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/controle-estoque/estoque-api/internal/application/analytics"
	"github.com/controle-estoque/estoque-api/internal/application/dto"
	"github.com/controle-estoque/estoque-api/internal/application/estoque"
	"github.com/controle-estoque/estoque-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProdutoUC   *usecase.ProdutoUseCase
	EstoqueUC   *estoque.RegistrarMovimentacaoUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Liveness
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: "Sistema de Controle de Estoque - API"})
	})

	// Produtos
	produtos := api.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Criar)
	produtos.Get("/", produtoHandler.Listar)
	produtos.Get("/:id", produtoHandler.Obter)
	produtos.Put("/:id", produtoHandler.Atualizar)
	produtos.Delete("/:id", produtoHandler.Desativar)

	// Movimentações de estoque
	movimentacaoHandler := NewMovimentacaoHandler(deps.EstoqueUC)
	api.Post("/movimentacoes", movimentacaoHandler.Registrar)
	api.Get("/movimentacoes", movimentacaoHandler.Listar)

	// Relatórios
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Dashboard)
	api.Get("/categorias", dashboardHandler.ListarCategorias)
}

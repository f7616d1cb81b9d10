package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/controle-estoque/estoque-api/internal/application/analytics"
	"github.com/controle-estoque/estoque-api/internal/application/dto"
)

// DashboardHandler trata os endpoints de relatórios.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Dashboard trata GET /api/dashboard.
//
// Resposta: DashboardResponse (total_produtos, produtos_sem_estoque,
// produtos_estoque_baixo, produtos_zerados, estoque_baixo,
// ultimas_movimentacoes[10], categorias).
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Detail: err.Error()})
	}
	return c.JSON(out)
}

// ListarCategorias trata GET /api/categorias: categorias distintas entre
// produtos ativos, em ordem alfabética.
func (h *DashboardHandler) ListarCategorias(c *fiber.Ctx) error {
	out, err := h.uc.ListarCategorias(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Detail: err.Error()})
	}
	return c.JSON(out)
}

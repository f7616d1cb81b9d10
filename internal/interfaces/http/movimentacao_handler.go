package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/controle-estoque/estoque-api/internal/application/dto"
	"github.com/controle-estoque/estoque-api/internal/application/estoque"
	"github.com/controle-estoque/estoque-api/internal/domain"
)

// MovimentacaoHandler trata as requisições HTTP de movimentações de estoque.
type MovimentacaoHandler struct {
	uc *estoque.RegistrarMovimentacaoUseCase
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(uc *estoque.RegistrarMovimentacaoUseCase) *MovimentacaoHandler {
	return &MovimentacaoHandler{uc: uc}
}

// Registrar trata POST /api/movimentacoes.
// 200 + movimentação criada (com quantidade_anterior/nova calculadas),
// 404 para produto inexistente ou inativo, 400 para estoque insuficiente —
// nesse caso o detail traz a quantidade disponível.
func (h *MovimentacaoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Detail: "corpo inválido"})
	}
	mov, err := h.uc.RegistrarMovimentacao(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Detail: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Detail: "Produto não encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Detail: "dados inválidos"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Detail: err.Error()})
		}
	}
	return c.JSON(dto.ToMovimentacaoResponse(mov))
}

// Listar trata GET /api/movimentacoes?produto_id=&limit=.
// Da mais recente para a mais antiga; limit padrão 100.
func (h *MovimentacaoHandler) Listar(c *fiber.Ctx) error {
	produtoID := c.Query("produto_id")
	limit := c.QueryInt("limit", 100)

	list, err := h.uc.ListarMovimentacoes(produtoID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Detail: err.Error()})
	}
	return c.JSON(dto.ToMovimentacaoResponseList(list))
}

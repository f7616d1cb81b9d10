package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/controle-estoque/estoque-api/internal/application/dto"
	"github.com/controle-estoque/estoque-api/internal/application/usecase"
	"github.com/controle-estoque/estoque-api/internal/domain"
)

// ProdutoHandler trata as requisições HTTP de produtos.
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Criar trata POST /api/produtos.
// 200 + produto criado, 400 para nome duplicado ou entrada inválida.
func (h *ProdutoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Detail: "corpo inválido"})
	}
	produto, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return produtoError(c, err)
	}
	return c.JSON(dto.ToProdutoResponse(produto))
}

// Listar trata GET /api/produtos?categoria=&busca=&apenas_ativos=.
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
	categoria := c.Query("categoria")
	busca := c.Query("busca")
	apenasAtivos := c.QueryBool("apenas_ativos", true)

	list, err := h.uc.Listar(categoria, busca, apenasAtivos)
	if err != nil {
		return produtoError(c, err)
	}
	return c.JSON(dto.ToProdutoResponseList(list))
}

// Obter trata GET /api/produtos/:id. Devolve o produto mesmo inativo.
func (h *ProdutoHandler) Obter(c *fiber.Ctx) error {
	produto, err := h.uc.Obter(c.Params("id"))
	if err != nil {
		return produtoError(c, err)
	}
	return c.JSON(dto.ToProdutoResponse(produto))
}

// Atualizar trata PUT /api/produtos/:id. Campos ausentes ficam inalterados.
func (h *ProdutoHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.AtualizarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Detail: "corpo inválido"})
	}
	produto, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		return produtoError(c, err)
	}
	return c.JSON(dto.ToProdutoResponse(produto))
}

// Desativar trata DELETE /api/produtos/:id (soft delete).
func (h *ProdutoHandler) Desativar(c *fiber.Ctx) error {
	if err := h.uc.Desativar(c.Params("id")); err != nil {
		return produtoError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Produto desativado com sucesso"})
}

// produtoError mapeia erros de domínio para status HTTP.
func produtoError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicateName):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE_NAME", Detail: "Produto com este nome já existe"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Detail: "Produto não encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Detail: "dados inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Detail: err.Error()})
	}
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/controle-estoque/estoque-api/internal/domain/entity"
)

// CriarProdutoRequest entrada para criar um produto. QuantidadeAtual é o saldo
// inicial: se for maior que zero, o motor registra uma movimentação "inicial".
type CriarProdutoRequest struct {
	Nome             string          `json:"nome" validate:"required,min=1,max=200"`
	Categoria        string          `json:"categoria" validate:"required"`
	UnidadeMedida    string          `json:"unidade_medida" validate:"required"`
	QuantidadeAtual  decimal.Decimal `json:"quantidade_atual"`
	QuantidadeMinima decimal.Decimal `json:"quantidade_minima"`
	PrecoCompra      decimal.Decimal `json:"preco_compra"`
	PrecoVenda       decimal.Decimal `json:"preco_venda"`
	CodigoBarras     *string         `json:"codigo_barras"`
}

// AtualizarProdutoRequest atualização parcial: campo ausente = inalterado.
// Quantidade não é atualizável por aqui; só o motor de movimentações a escreve.
type AtualizarProdutoRequest struct {
	Nome             *string          `json:"nome" validate:"omitempty,min=1,max=200"`
	Categoria        *string          `json:"categoria"`
	UnidadeMedida    *string          `json:"unidade_medida"`
	QuantidadeMinima *decimal.Decimal `json:"quantidade_minima"`
	PrecoCompra      *decimal.Decimal `json:"preco_compra"`
	PrecoVenda       *decimal.Decimal `json:"preco_venda"`
	CodigoBarras     *string          `json:"codigo_barras"`
	Ativo            *bool            `json:"ativo"`
}

// ProdutoResponse saída de um produto.
type ProdutoResponse struct {
	ID               string          `json:"id"`
	Nome             string          `json:"nome"`
	Categoria        string          `json:"categoria"`
	UnidadeMedida    string          `json:"unidade_medida"`
	QuantidadeAtual  decimal.Decimal `json:"quantidade_atual"`
	QuantidadeMinima decimal.Decimal `json:"quantidade_minima"`
	PrecoCompra      decimal.Decimal `json:"preco_compra"`
	PrecoVenda       decimal.Decimal `json:"preco_venda"`
	CodigoBarras     string          `json:"codigo_barras,omitempty"`
	Ativo            bool            `json:"ativo"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ToProdutoResponse converte a entidade para o DTO de saída.
func ToProdutoResponse(p *entity.Produto) *ProdutoResponse {
	if p == nil {
		return nil
	}
	return &ProdutoResponse{
		ID:               p.ID,
		Nome:             p.Nome,
		Categoria:        p.Categoria,
		UnidadeMedida:    p.UnidadeMedida,
		QuantidadeAtual:  p.QuantidadeAtual,
		QuantidadeMinima: p.QuantidadeMinima,
		PrecoCompra:      p.PrecoCompra,
		PrecoVenda:       p.PrecoVenda,
		CodigoBarras:     p.CodigoBarras,
		Ativo:            p.Ativo,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ToProdutoResponseList converte uma lista de entidades.
func ToProdutoResponseList(list []*entity.Produto) []ProdutoResponse {
	items := make([]ProdutoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProdutoResponse(p))
	}
	return items
}

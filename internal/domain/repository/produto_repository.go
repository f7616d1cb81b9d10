package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/controle-estoque/estoque-api/internal/domain/entity"
)

// ProdutoFilter filtros de listagem aplicados no banco. A busca textual
// (nome/código de barras) é aplicada na camada de aplicação.
type ProdutoFilter struct {
	Categoria    string // vazio = todas
	ApenasAtivos bool
}

// ProdutoRepository define o porto de persistência para Produto (DIP).
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	// GetForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE).
	// Só faz sentido dentro de uma transação; serializa movimentações por produto.
	GetForUpdate(id string) (*entity.Produto, error)
	GetAtivoByNome(nome string) (*entity.Produto, error)
	Update(produto *entity.Produto) error
	// UpdateQuantidade grava a nova quantidade calculada pelo motor de
	// movimentações e atualiza updated_at. Único caminho de escrita do saldo.
	UpdateQuantidade(id string, quantidade decimal.Decimal, updatedAt time.Time) error
	List(filter ProdutoFilter) ([]*entity.Produto, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/controle-estoque/estoque-api/internal/domain"
	"github.com/controle-estoque/estoque-api/internal/domain/entity"
	"github.com/controle-estoque/estoque-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const produtoColumns = `id, nome, categoria, unidade_medida, quantidade_atual, quantidade_minima, preco_compra, preco_venda, codigo_barras, ativo, created_at, updated_at`

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência para produtos.
// Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um produto novo. A constraint parcial de nome único entre
// ativos vira domain.ErrDuplicateName.
func (r *ProdutoRepo) Create(produto *entity.Produto) error {
	query := `
		INSERT INTO produtos (` + produtoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	codigoBarras := (*string)(nil)
	if produto.CodigoBarras != "" {
		codigoBarras = &produto.CodigoBarras
	}
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.Categoria, produto.UnidadeMedida,
		produto.QuantidadeAtual, produto.QuantidadeMinima, produto.PrecoCompra,
		produto.PrecoVenda, codigoBarras, produto.Ativo, produto.CreatedAt, produto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID, ativo ou não.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produtos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get produto")
}

// GetForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE).
// Serializa movimentações concorrentes do mesmo produto.
func (r *ProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produtos WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get produto for update")
}

// GetAtivoByNome obtém um produto ativo pelo nome exato.
func (r *ProdutoRepo) GetAtivoByNome(nome string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produtos WHERE nome = $1 AND ativo = true`
	return r.scanOne(r.q.QueryRow(context.Background(), query, nome), "get produto by nome")
}

// Update grava os campos editáveis do produto. Não toca quantidade_atual:
// esse campo só é escrito por UpdateQuantidade.
func (r *ProdutoRepo) Update(produto *entity.Produto) error {
	query := `
		UPDATE produtos SET nome = $2, categoria = $3, unidade_medida = $4, quantidade_minima = $5,
			preco_compra = $6, preco_venda = $7, codigo_barras = $8, ativo = $9, updated_at = $10
		WHERE id = $1`
	codigoBarras := (*string)(nil)
	if produto.CodigoBarras != "" {
		codigoBarras = &produto.CodigoBarras
	}
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.Categoria, produto.UnidadeMedida,
		produto.QuantidadeMinima, produto.PrecoCompra, produto.PrecoVenda,
		codigoBarras, produto.Ativo, produto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// UpdateQuantidade grava o novo saldo calculado pelo motor de movimentações.
func (r *ProdutoRepo) UpdateQuantidade(id string, quantidade decimal.Decimal, updatedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET quantidade_atual = $2, updated_at = $3 WHERE id = $1`,
		id, quantidade, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	return nil
}

// List lista produtos filtrando por ativo e categoria no banco.
// Ordenação por created_at e id: estável dentro de uma chamada.
func (r *ProdutoRepo) List(filter repository.ProdutoFilter) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produtos`
	var conds []string
	var args []any
	if filter.ApenasAtivos {
		conds = append(conds, "ativo = true")
	}
	if filter.Categoria != "" {
		args = append(args, filter.Categoria)
		conds = append(conds, fmt.Sprintf("categoria = $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at, id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProdutoRepo) scanOne(row pgx.Row, op string) (*entity.Produto, error) {
	p, err := scanProduto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	var codigoBarras *string
	err := row.Scan(
		&p.ID, &p.Nome, &p.Categoria, &p.UnidadeMedida, &p.QuantidadeAtual,
		&p.QuantidadeMinima, &p.PrecoCompra, &p.PrecoVenda, &codigoBarras,
		&p.Ativo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if codigoBarras != nil {
		p.CodigoBarras = *codigoBarras
	}
	return &p, nil
}

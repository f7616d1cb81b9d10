package postgres

import (
	"context"
	"fmt"

	"github.com/controle-estoque/estoque-api/internal/domain/entity"
	"github.com/controle-estoque/estoque-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

const movimentacaoColumns = `id, produto_id, tipo, motivo, quantidade, quantidade_anterior, quantidade_nova, preco_unitario, observacoes, usuario, created_at`

// MovimentacaoRepo implementação sobre PostgreSQL (usável com pool ou tx).
// O livro é append-only: só existem insert e leitura.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create persiste uma movimentação.
func (r *MovimentacaoRepo) Create(mov *entity.Movimentacao) error {
	query := `
		INSERT INTO movimentacoes (` + movimentacaoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	observacoes := (*string)(nil)
	if mov.Observacoes != "" {
		observacoes = &mov.Observacoes
	}
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.ProdutoID, mov.Tipo, mov.Motivo, mov.Quantidade,
		mov.QuantidadeAnterior, mov.QuantidadeNova, mov.PrecoUnitario,
		observacoes, mov.Usuario, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// List lista movimentações da mais recente para a mais antiga, com empate de
// created_at resolvido pela ordem de inserção (seq). produtoID vazio = todas.
func (r *MovimentacaoRepo) List(produtoID string, limit int) ([]*entity.Movimentacao, error) {
	query := `SELECT ` + movimentacaoColumns + ` FROM movimentacoes`
	var args []any
	if produtoID != "" {
		args = append(args, produtoID)
		query += " WHERE produto_id = $1"
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC, seq DESC LIMIT $%d", len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimentacao
	for rows.Next() {
		var m entity.Movimentacao
		var observacoes *string
		if err := rows.Scan(&m.ID, &m.ProdutoID, &m.Tipo, &m.Motivo, &m.Quantidade,
			&m.QuantidadeAnterior, &m.QuantidadeNova, &m.PrecoUnitario,
			&observacoes, &m.Usuario, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		if observacoes != nil {
			m.Observacoes = *observacoes
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

package repository

import (
	"github.com/controle-estoque/estoque-api/internal/domain/entity"
)

// MovimentacaoRepository define o porto de persistência para Movimentacao.
// O livro é append-only: não existem Update nem Delete.
type MovimentacaoRepository interface {
	Create(mov *entity.Movimentacao) error
	// List devolve movimentações da mais recente para a mais antiga,
	// opcionalmente filtradas por produto. produtoID vazio = todas.
	List(produtoID string, limit int) ([]*entity.Movimentacao, error)
}

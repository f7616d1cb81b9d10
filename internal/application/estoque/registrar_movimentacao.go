package estoque

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/controle-estoque/estoque-api/internal/application/dto"
	"github.com/controle-estoque/estoque-api/internal/domain"
	"github.com/controle-estoque/estoque-api/internal/domain/entity"
	"github.com/controle-estoque/estoque-api/internal/domain/repository"
)

// RegistrarMovimentacaoUseCase é o motor do livro de movimentações: calcula a
// transição de saldo, rejeita saídas que deixariam o estoque negativo e é o
// único escritor de quantidade_atual em Produto.
//
// Cada registro roda em uma transação com a linha do produto bloqueada
// (SELECT FOR UPDATE), então duas movimentações concorrentes do mesmo produto
// nunca leem o mesmo saldo anterior.
type RegistrarMovimentacaoUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovimentacaoRepository // leituras fora de transação
}

// NewRegistrarMovimentacaoUseCase constrói o caso de uso.
func NewRegistrarMovimentacaoUseCase(txRunner TxRunner, movRepo repository.MovimentacaoRepository) *RegistrarMovimentacaoUseCase {
	return &RegistrarMovimentacaoUseCase{txRunner: txRunner, movRepo: movRepo}
}

// RegistrarMovimentacao valida a entrada, aplica a transição de saldo e grava
// movimentação + novo saldo atomicamente. Devolve a movimentação criada com
// quantidade_anterior/quantidade_nova preenchidas.
//
// Falhas: ErrInvalidInput (tipo/motivo desconhecido ou quantidade <= 0),
// ErrNotFound (produto inexistente ou inativo), InsufficientStockError
// (saída maior que o disponível; nada é gravado).
func (uc *RegistrarMovimentacaoUseCase) RegistrarMovimentacao(ctx context.Context, in dto.RegistrarMovimentacaoRequest) (*entity.Movimentacao, error) {
	if in.ProdutoID == "" || !entity.TipoValido(in.Tipo) || !entity.MotivoValido(in.Motivo) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantidade.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	usuario := entity.UsuarioSistema
	if in.Usuario != nil && *in.Usuario != "" {
		usuario = *in.Usuario
	}
	observacoes := ""
	if in.Observacoes != nil {
		observacoes = *in.Observacoes
	}

	var criada *entity.Movimentacao
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		// Bloqueia a linha do produto: serializa movimentações por produto.
		produto, err := produtoRepo.GetForUpdate(in.ProdutoID)
		if err != nil {
			return err
		}
		if produto == nil || !produto.Ativo {
			return domain.ErrNotFound
		}

		anterior := produto.QuantidadeAtual
		var nova decimal.Decimal
		if in.Tipo == entity.TipoEntrada {
			nova = anterior.Add(in.Quantidade)
		} else {
			nova = anterior.Sub(in.Quantidade)
			if nova.IsNegative() {
				return &domain.InsufficientStockError{Disponivel: anterior}
			}
		}

		now := time.Now().UTC()
		mov := &entity.Movimentacao{
			ID:                 uuid.New().String(),
			ProdutoID:          produto.ID,
			Tipo:               in.Tipo,
			Motivo:             in.Motivo,
			Quantidade:         in.Quantidade,
			QuantidadeAnterior: anterior,
			QuantidadeNova:     nova,
			PrecoUnitario:      in.PrecoUnitario,
			Observacoes:        observacoes,
			Usuario:            usuario,
			CreatedAt:          now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := produtoRepo.UpdateQuantidade(produto.ID, nova, now); err != nil {
			return err
		}
		criada = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return criada, nil
}

// RegistrarInicialInTx grava a movimentação de abertura de um produto recém
// criado usando o repositório da transação do chamador. anterior = 0 e
// nova = saldo inicial declarado, mantendo o livro consistente desde a criação.
func (uc *RegistrarMovimentacaoUseCase) RegistrarInicialInTx(
	movRepo repository.MovimentacaoRepository,
	produto *entity.Produto,
	now time.Time,
) error {
	mov := &entity.Movimentacao{
		ID:                 uuid.New().String(),
		ProdutoID:          produto.ID,
		Tipo:               entity.TipoEntrada,
		Motivo:             entity.MotivoInicial,
		Quantidade:         produto.QuantidadeAtual,
		QuantidadeAnterior: decimal.Zero,
		QuantidadeNova:     produto.QuantidadeAtual,
		PrecoUnitario:      produto.PrecoCompra,
		Usuario:            entity.UsuarioSistema,
		CreatedAt:          now,
	}
	return movRepo.Create(mov)
}

// ListarMovimentacoes devolve as movimentações da mais recente para a mais
// antiga, opcionalmente filtradas por produto.
func (uc *RegistrarMovimentacaoUseCase) ListarMovimentacoes(produtoID string, limit int) ([]*entity.Movimentacao, error) {
	if limit <= 0 {
		limit = 100
	}
	return uc.movRepo.List(produtoID, limit)
}

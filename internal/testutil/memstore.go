// Package testutil fornece dublês em memória dos portos de persistência,
// com a mesma semântica de serialização e rollback do banco real.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/controle-estoque/estoque-api/internal/domain"
	"github.com/controle-estoque/estoque-api/internal/domain/entity"
	"github.com/controle-estoque/estoque-api/internal/domain/repository"
)

// MemStore guarda produtos e movimentações em memória. As visões devolvidas
// por ProdutoRepo/MovimentacaoRepo travam o mutex a cada chamada; Run segura
// o mutex durante o callback inteiro (equivalente ao FOR UPDATE por produto)
// e restaura o estado anterior se o callback falhar (rollback).
type MemStore struct {
	mu       sync.Mutex
	produtos []*entity.Produto
	movs     []*entity.Movimentacao
}

// NewMemStore constrói um store vazio.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// ProdutoRepo devolve a visão de produtos fora de transação.
func (s *MemStore) ProdutoRepo() repository.ProdutoRepository {
	return &produtoView{s: s, locking: true}
}

// MovimentacaoRepo devolve a visão de movimentações fora de transação.
func (s *MemStore) MovimentacaoRepo() repository.MovimentacaoRepository {
	return &movView{s: s, locking: true}
}

// Run implementa estoque.TxRunner.
func (s *MemStore) Run(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	backupProdutos := cloneProdutos(s.produtos)
	backupMovs := cloneMovs(s.movs)
	if err := fn(&movView{s: s}, &produtoView{s: s}); err != nil {
		s.produtos = backupProdutos
		s.movs = backupMovs
		return err
	}
	return nil
}

// Movimentacoes devolve uma cópia de todas as movimentações, na ordem de inserção.
func (s *MemStore) Movimentacoes() []*entity.Movimentacao {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneMovs(s.movs)
}

// ── visão de produtos ────────────────────────────────────────────────────────

type produtoView struct {
	s       *MemStore
	locking bool
}

func (v *produtoView) lock() func() {
	if !v.locking {
		return func() {}
	}
	v.s.mu.Lock()
	return v.s.mu.Unlock
}

func (v *produtoView) Create(produto *entity.Produto) error {
	defer v.lock()()
	for _, p := range v.s.produtos {
		if p.Ativo && p.Nome == produto.Nome {
			return domain.ErrDuplicateName
		}
	}
	cp := *produto
	v.s.produtos = append(v.s.produtos, &cp)
	return nil
}

func (v *produtoView) GetByID(id string) (*entity.Produto, error) {
	defer v.lock()()
	return v.find(id), nil
}

func (v *produtoView) GetForUpdate(id string) (*entity.Produto, error) {
	defer v.lock()()
	return v.find(id), nil
}

func (v *produtoView) GetAtivoByNome(nome string) (*entity.Produto, error) {
	defer v.lock()()
	for _, p := range v.s.produtos {
		if p.Ativo && p.Nome == nome {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (v *produtoView) Update(produto *entity.Produto) error {
	defer v.lock()()
	for _, p := range v.s.produtos {
		if p.ID == produto.ID {
			// quantidade_atual fica fora do Update, como no banco
			quantidade := p.QuantidadeAtual
			*p = *produto
			p.QuantidadeAtual = quantidade
			return nil
		}
	}
	return nil
}

func (v *produtoView) UpdateQuantidade(id string, quantidade decimal.Decimal, updatedAt time.Time) error {
	defer v.lock()()
	for _, p := range v.s.produtos {
		if p.ID == id {
			p.QuantidadeAtual = quantidade
			p.UpdatedAt = updatedAt
			return nil
		}
	}
	return nil
}

func (v *produtoView) List(filter repository.ProdutoFilter) ([]*entity.Produto, error) {
	defer v.lock()()
	var list []*entity.Produto
	for _, p := range v.s.produtos {
		if filter.ApenasAtivos && !p.Ativo {
			continue
		}
		if filter.Categoria != "" && p.Categoria != filter.Categoria {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (v *produtoView) find(id string) *entity.Produto {
	for _, p := range v.s.produtos {
		if p.ID == id {
			cp := *p
			return &cp
		}
	}
	return nil
}

// ── visão de movimentações ───────────────────────────────────────────────────

type movView struct {
	s       *MemStore
	locking bool
}

func (v *movView) lock() func() {
	if !v.locking {
		return func() {}
	}
	v.s.mu.Lock()
	return v.s.mu.Unlock
}

func (v *movView) Create(mov *entity.Movimentacao) error {
	defer v.lock()()
	cp := *mov
	v.s.movs = append(v.s.movs, &cp)
	return nil
}

func (v *movView) List(produtoID string, limit int) ([]*entity.Movimentacao, error) {
	defer v.lock()()
	var list []*entity.Movimentacao
	for i := len(v.s.movs) - 1; i >= 0 && len(list) < limit; i-- {
		m := v.s.movs[i]
		if produtoID != "" && m.ProdutoID != produtoID {
			continue
		}
		cp := *m
		list = append(list, &cp)
	}
	return list, nil
}

func cloneProdutos(list []*entity.Produto) []*entity.Produto {
	out := make([]*entity.Produto, 0, len(list))
	for _, p := range list {
		cp := *p
		out = append(out, &cp)
	}
	return out
}

func cloneMovs(list []*entity.Movimentacao) []*entity.Movimentacao {
	out := make([]*entity.Movimentacao, 0, len(list))
	for _, m := range list {
		cp := *m
		out = append(out, &cp)
	}
	return out
}

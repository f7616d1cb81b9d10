// Package analytics contém as visões derivadas do estoque: dashboard e
// listagem de categorias. Somente leitura, calculado sob demanda.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/controle-estoque/estoque-api/internal/application/dto"
	"github.com/controle-estoque/estoque-api/internal/domain/entity"
	"github.com/controle-estoque/estoque-api/internal/domain/repository"
)

const dashboardUltimasMovimentacoes = 10 // movimentações recentes no dashboard

// DashboardUseCase monta o resumo do estoque varrendo produtos ativos e as
// movimentações mais recentes. Não mantém estado nem cache próprio.
type DashboardUseCase struct {
	produtoRepo repository.ProdutoRepository
	movRepo     repository.MovimentacaoRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(produtoRepo repository.ProdutoRepository, movRepo repository.MovimentacaoRepository) *DashboardUseCase {
	return &DashboardUseCase{produtoRepo: produtoRepo, movRepo: movRepo}
}

// Dashboard devolve contadores, listas de alerta (zerados e estoque baixo),
// as últimas movimentações e o agregado por categoria.
//
// A comparação de estoque baixo (0 < quantidade <= mínimo) é feita aqui,
// produto a produto, contra o mínimo do próprio produto — não no banco.
func (uc *DashboardUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	// Duas consultas independentes em paralelo.
	type produtosResult struct {
		list []*entity.Produto
		err  error
	}
	type movsResult struct {
		list []*entity.Movimentacao
		err  error
	}
	produtosCh := make(chan produtosResult, 1)
	movsCh := make(chan movsResult, 1)

	go func() {
		list, err := uc.produtoRepo.List(repository.ProdutoFilter{ApenasAtivos: true})
		produtosCh <- produtosResult{list, err}
	}()
	go func() {
		list, err := uc.movRepo.List("", dashboardUltimasMovimentacoes)
		movsCh <- movsResult{list, err}
	}()

	produtos := <-produtosCh
	movs := <-movsCh

	if produtos.err != nil {
		return nil, fmt.Errorf("dashboard: produtos ativos: %w", produtos.err)
	}
	if movs.err != nil {
		return nil, fmt.Errorf("dashboard: últimas movimentações: %w", movs.err)
	}

	zerados := make([]*entity.Produto, 0)
	estoqueBaixo := make([]*entity.Produto, 0)
	porCategoria := make(map[string]*dto.CategoriaResumo)
	for _, p := range produtos.list {
		switch {
		case p.QuantidadeAtual.IsZero():
			zerados = append(zerados, p)
		case p.QuantidadeAtual.LessThanOrEqual(p.QuantidadeMinima):
			estoqueBaixo = append(estoqueBaixo, p)
		}
		resumo, ok := porCategoria[p.Categoria]
		if !ok {
			resumo = &dto.CategoriaResumo{Categoria: p.Categoria}
			porCategoria[p.Categoria] = resumo
		}
		resumo.Total++
		resumo.QuantidadeTotal = resumo.QuantidadeTotal.Add(p.QuantidadeAtual)
	}

	categorias := make([]dto.CategoriaResumo, 0, len(porCategoria))
	for _, resumo := range porCategoria {
		categorias = append(categorias, *resumo)
	}
	sort.Slice(categorias, func(i, j int) bool {
		if categorias[i].Total != categorias[j].Total {
			return categorias[i].Total > categorias[j].Total
		}
		return categorias[i].Categoria < categorias[j].Categoria
	})

	return &dto.DashboardResponse{
		TotalProdutos:        len(produtos.list),
		ProdutosSemEstoque:   len(zerados),
		ProdutosEstoqueBaixo: len(estoqueBaixo),
		ProdutosZerados:      dto.ToProdutoResponseList(zerados),
		EstoqueBaixo:         dto.ToProdutoResponseList(estoqueBaixo),
		UltimasMovimentacoes: dto.ToMovimentacaoResponseList(movs.list),
		Categorias:           categorias,
	}, nil
}

// ListarCategorias devolve as categorias distintas entre produtos ativos,
// em ordem alfabética.
func (uc *DashboardUseCase) ListarCategorias(ctx context.Context) ([]string, error) {
	list, err := uc.produtoRepo.List(repository.ProdutoFilter{ApenasAtivos: true})
	if err != nil {
		return nil, fmt.Errorf("listar categorias: %w", err)
	}
	vistas := make(map[string]struct{})
	categorias := make([]string, 0)
	for _, p := range list {
		if _, ok := vistas[p.Categoria]; ok {
			continue
		}
		vistas[p.Categoria] = struct{}{}
		categorias = append(categorias, p.Categoria)
	}
	sort.Strings(categorias)
	return categorias, nil
}

package dto

import "github.com/shopspring/decimal"

// DashboardResponse resposta de GET /api/dashboard.
//
// estoque_baixo lista produtos ativos com 0 < quantidade <= quantidade_minima
// (cada produto comparado contra o seu próprio mínimo); produtos_zerados lista
// os ativos com quantidade exatamente zero.
type DashboardResponse struct {
	TotalProdutos        int                    `json:"total_produtos"`
	ProdutosSemEstoque   int                    `json:"produtos_sem_estoque"`
	ProdutosEstoqueBaixo int                    `json:"produtos_estoque_baixo"`
	ProdutosZerados      []ProdutoResponse      `json:"produtos_zerados"`
	EstoqueBaixo         []ProdutoResponse      `json:"estoque_baixo"`
	UltimasMovimentacoes []MovimentacaoResponse `json:"ultimas_movimentacoes"`
	Categorias           []CategoriaResumo      `json:"categorias"`
}

// CategoriaResumo agregado por categoria entre produtos ativos,
// ordenado por total decrescente.
type CategoriaResumo struct {
	Categoria       string          `json:"categoria"`
	Total           int             `json:"total"`
	QuantidadeTotal decimal.Decimal `json:"quantidade_total"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida aceitas para um produto.
const (
	UnidadeMedidaUnidade = "unidade"
	UnidadeMedidaKg      = "kg"
	UnidadeMedidaLitro   = "litro"
	UnidadeMedidaMetro   = "metro"
	UnidadeMedidaCaixa   = "caixa"
	UnidadeMedidaPacote  = "pacote"
)

// UnidadeMedidaValida informa se o valor é uma unidade de medida conhecida.
func UnidadeMedidaValida(u string) bool {
	switch u {
	case UnidadeMedidaUnidade, UnidadeMedidaKg, UnidadeMedidaLitro,
		UnidadeMedidaMetro, UnidadeMedidaCaixa, UnidadeMedidaPacote:
		return true
	}
	return false
}

// Produto representa um item do estoque. QuantidadeAtual nunca é editada
// diretamente após a criação: apenas o motor de movimentações a altera.
// Nome é único entre produtos ativos.
type Produto struct {
	ID               string
	Nome             string
	Categoria        string
	UnidadeMedida    string
	QuantidadeAtual  decimal.Decimal
	QuantidadeMinima decimal.Decimal
	PrecoCompra      decimal.Decimal
	PrecoVenda       decimal.Decimal
	CodigoBarras     string // vazio = sem código
	Ativo            bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

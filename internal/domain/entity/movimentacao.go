package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"
)

// Motivos de movimentação.
const (
	MotivoCompra    = "compra"
	MotivoVenda     = "venda"
	MotivoPerda     = "perda"
	MotivoDevolucao = "devolucao"
	MotivoAjuste    = "ajuste"
	MotivoInicial   = "inicial"
)

// UsuarioSistema é o autor atribuído quando a requisição não informa usuário.
const UsuarioSistema = "Sistema"

// TipoValido informa se o valor é um tipo de movimentação conhecido.
func TipoValido(t string) bool {
	return t == TipoEntrada || t == TipoSaida
}

// MotivoValido informa se o valor é um motivo conhecido.
func MotivoValido(m string) bool {
	switch m {
	case MotivoCompra, MotivoVenda, MotivoPerda, MotivoDevolucao, MotivoAjuste, MotivoInicial:
		return true
	}
	return false
}

// Movimentacao é um fato imutável do livro de movimentações: registra uma única
// transição de saldo de um produto. QuantidadeAnterior e QuantidadeNova são
// sempre calculadas pelo motor, nunca fornecidas pelo chamador.
// Invariante: QuantidadeNova = QuantidadeAnterior ± Quantidade, e nunca negativa.
type Movimentacao struct {
	ID                 string
	ProdutoID          string
	Tipo               string // entrada, saida
	Motivo             string
	Quantidade         decimal.Decimal // delta, sempre > 0; o tipo codifica o sinal
	QuantidadeAnterior decimal.Decimal
	QuantidadeNova     decimal.Decimal
	PrecoUnitario      decimal.Decimal
	Observacoes        string
	Usuario            string
	CreatedAt          time.Time
}

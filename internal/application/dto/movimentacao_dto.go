package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/controle-estoque/estoque-api/internal/domain/entity"
)

// RegistrarMovimentacaoRequest entrada para registrar uma movimentação.
// Quantidade deve ser positiva; o tipo (entrada/saida) codifica o sinal.
type RegistrarMovimentacaoRequest struct {
	ProdutoID     string          `json:"produto_id" validate:"required"`
	Tipo          string          `json:"tipo" validate:"required"`
	Motivo        string          `json:"motivo" validate:"required"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Observacoes   *string         `json:"observacoes"`
	Usuario       *string         `json:"usuario"`
}

// MovimentacaoResponse saída de uma movimentação, com o antes/depois calculado.
type MovimentacaoResponse struct {
	ID                 string          `json:"id"`
	ProdutoID          string          `json:"produto_id"`
	Tipo               string          `json:"tipo"`
	Motivo             string          `json:"motivo"`
	Quantidade         decimal.Decimal `json:"quantidade"`
	QuantidadeAnterior decimal.Decimal `json:"quantidade_anterior"`
	QuantidadeNova     decimal.Decimal `json:"quantidade_nova"`
	PrecoUnitario      decimal.Decimal `json:"preco_unitario"`
	Observacoes        string          `json:"observacoes,omitempty"`
	Usuario            string          `json:"usuario"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ToMovimentacaoResponse converte a entidade para o DTO de saída.
func ToMovimentacaoResponse(m *entity.Movimentacao) *MovimentacaoResponse {
	if m == nil {
		return nil
	}
	return &MovimentacaoResponse{
		ID:                 m.ID,
		ProdutoID:          m.ProdutoID,
		Tipo:               m.Tipo,
		Motivo:             m.Motivo,
		Quantidade:         m.Quantidade,
		QuantidadeAnterior: m.QuantidadeAnterior,
		QuantidadeNova:     m.QuantidadeNova,
		PrecoUnitario:      m.PrecoUnitario,
		Observacoes:        m.Observacoes,
		Usuario:            m.Usuario,
		CreatedAt:          m.CreatedAt,
	}
}

// ToMovimentacaoResponseList converte uma lista de entidades.
func ToMovimentacaoResponseList(list []*entity.Movimentacao) []MovimentacaoResponse {
	items := make([]MovimentacaoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *ToMovimentacaoResponse(m))
	}
	return items
}

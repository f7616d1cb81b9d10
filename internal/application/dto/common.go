package dto

import "github.com/shopspring/decimal"

// O contrato JSON original serializa quantidades e preços como números,
// não como strings. Vale para todo binário que importe este pacote.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse corpo de erro HTTP. O campo detail é o que o frontend lê;
// code é um identificador estável por tipo de falha.
type ErrorResponse struct {
	Code   string `json:"code,omitempty"`
	Detail string `json:"detail"`
}

// MessageResponse corpo de confirmação simples.
type MessageResponse struct {
	Message string `json:"message"`
}

package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Erros de domínio (sem dependências de transporte).
var (
	ErrNotFound          = errors.New("produto não encontrado")
	ErrDuplicateName     = errors.New("produto com este nome já existe")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("estoque insuficiente")
)

// InsufficientStockError rejeição de uma saída que deixaria o saldo negativo.
// Carrega a quantidade disponível para que o chamador reaja sem uma segunda leitura.
type InsufficientStockError struct {
	Disponivel decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Estoque insuficiente. Disponível: %s", e.Disponivel.String())
}

// Is permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

package services

import (
	"context"

	"github.com/dpk-exchange/exchange_backend/internal/dto"
)

// ExchangeSvcFacade covers the write path of the ledger: recording exchanges
// and the explicit update/delete operations.
type ExchangeSvcFacade interface {
	// CreateExchange validates input, computes the conversion, persists the
	// transaction and renders its invoice. A render failure is reported in
	// the response without undoing the committed ledger write.
	CreateExchange(ctx context.Context, req dto.CreateExchangeRequest) (*dto.ExchangeResponse, error)

	// UpdateTransaction recomputes the total from the revised fields and
	// overwrites the row. A missing id is a silent no-op.
	UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) error

	// DeleteTransaction removes one row; a missing id is not an error.
	DeleteTransaction(ctx context.Context, id int64) error

	// DeleteTransactions removes a set of rows; an empty set fails with
	// apperrors.ErrNoIDsProvided before any side effect.
	DeleteTransactions(ctx context.Context, ids []int64) error

	// DeleteAllTransactions empties the ledger.
	DeleteAllTransactions(ctx context.Context) error
}

package repositories

import (
	"context"

	"github.com/dpk-exchange/exchange_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionUpdate carries the revisable fields of a ledger row. AmountOut
// must already be recomputed by the conversion rule; the repository never
// derives it.
type TransactionUpdate struct {
	AmountIn     decimal.Decimal
	Rate         decimal.Decimal
	AmountOut    decimal.Decimal
	CustomerName string
}

// TransactionReader defines read operations over the transaction ledger.
type TransactionReader interface {
	// FindTransactions lists transactions most-recent-first (by id), bounded
	// by the period's date window and an optional exact pair filter, capped
	// at domain.HistoryLimit rows. pair == nil means all pairs.
	FindTransactions(ctx context.Context, period domain.Period, pair *domain.PairFilter) ([]domain.Transaction, error)

	// GetDailyStats aggregates per-currency inbound/outbound sums and the
	// people count for the store's current date.
	GetDailyStats(ctx context.Context) (*domain.DailyStats, error)
}

// TransactionWriter defines write operations over the transaction ledger.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction. The store assigns id, date
	// and time of day; the passed transaction is updated in place with them.
	SaveTransaction(ctx context.Context, txn *domain.Transaction) error

	// UpdateTransaction overwrites the revisable fields of a row. A missing
	// id is a silent no-op, not an error.
	UpdateTransaction(ctx context.Context, id int64, update TransactionUpdate) error

	// DeleteTransaction removes one row; deleting a missing id is not an error.
	DeleteTransaction(ctx context.Context, id int64) error

	// DeleteTransactions removes the given rows. Callers must reject an empty
	// id set before reaching the repository.
	DeleteTransactions(ctx context.Context, ids []int64) error

	// DeleteAllTransactions empties the ledger.
	DeleteAllTransactions(ctx context.Context) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
// This is a facade for clients that need access to all operations.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

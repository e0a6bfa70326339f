package services

import (
	"context"

	"github.com/dpk-exchange/exchange_backend/internal/core/domain"
)

// InvoiceRenderer turns a completed transaction into a printable document and
// its suggested filename. Rendering is deterministic for a given transaction.
type InvoiceRenderer interface {
	Render(txn domain.Transaction) (content []byte, filename string, err error)
}

// InvoiceStore persists rendered documents and serves them back by filename.
type InvoiceStore interface {
	Save(filename string, content []byte) error
	// Fetch returns apperrors.ErrNotFound for unknown filenames.
	Fetch(filename string) ([]byte, error)
}

// Notifier forwards a transaction summary to an external chat channel.
// Delivery is best-effort: failures surface as
// apperrors.ErrNotificationUnavailable and never roll back ledger state.
type Notifier interface {
	NotifyTransaction(ctx context.Context, txn domain.Transaction) error
}

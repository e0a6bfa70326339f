package services

import (
	"context"

	"github.com/dpk-exchange/exchange_backend/internal/core/domain"
)

// ReportingSvcFacade covers the read path: history listing and daily stats.
type ReportingSvcFacade interface {
	// ListHistory returns a most-recent-first snapshot bounded by the named
	// period and optional "FROM_TO" pair expression ("all" for no filter).
	ListHistory(ctx context.Context, period, pair string) ([]domain.Transaction, error)

	// DailyStats reports per-currency volumes and the people count for the
	// store's current date.
	DailyStats(ctx context.Context) (*domain.DailyStats, error)
}

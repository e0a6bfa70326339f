package services

import (
	"context"
	"fmt"

	"github.com/dpk-exchange/exchange_backend/internal/apperrors"
	"github.com/dpk-exchange/exchange_backend/internal/core/domain"
	portsrepo "github.com/dpk-exchange/exchange_backend/internal/core/ports/repositories"
	portssvc "github.com/dpk-exchange/exchange_backend/internal/core/ports/services"
)

// reportingService serves the read-only derived views of the ledger.
type reportingService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(txnRepo portsrepo.TransactionReader) portssvc.ReportingSvcFacade {
	return &reportingService{txnRepo: txnRepo}
}

// ListHistory returns the filtered, most-recent-first history snapshot.
func (s *reportingService) ListHistory(ctx context.Context, period, pair string) ([]domain.Transaction, error) {
	p := domain.Period(period)
	if period == "" {
		p = domain.PeriodAll
	}
	if !p.Valid() {
		return nil, fmt.Errorf("%w: unknown period %q", apperrors.ErrValidation, period)
	}

	pairFilter, err := domain.ParsePairFilter(pair)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.FindTransactions(ctx, p, pairFilter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transaction history")
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return txns, nil
}

// DailyStats reports today's per-currency volumes and people count.
func (s *reportingService) DailyStats(ctx context.Context) (*domain.DailyStats, error) {
	stats, err := s.txnRepo.GetDailyStats(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate daily stats")
		return nil, fmt.Errorf("failed to aggregate daily stats: %w", err)
	}
	return stats, nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dpk-exchange/exchange_backend/internal/apperrors"
	"github.com/dpk-exchange/exchange_backend/internal/core/domain"
	portsrepo "github.com/dpk-exchange/exchange_backend/internal/core/ports/repositories"
	portssvc "github.com/dpk-exchange/exchange_backend/internal/core/ports/services"
	"github.com/dpk-exchange/exchange_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// exchangeService orchestrates the write path:
// Validate -> Compute -> Persist -> Render -> Respond.
// No state survives across requests.
type exchangeService struct {
	BaseService
	txnRepo  portsrepo.TransactionRepositoryFacade
	renderer portssvc.InvoiceRenderer
	store    portssvc.InvoiceStore
}

// NewExchangeService creates a new exchange service.
func NewExchangeService(txnRepo portsrepo.TransactionRepositoryFacade, renderer portssvc.InvoiceRenderer, store portssvc.InvoiceStore) portssvc.ExchangeSvcFacade {
	return &exchangeService{
		txnRepo:  txnRepo,
		renderer: renderer,
		store:    store,
	}
}

// validateExchangeInput enforces the closed currency enum and positive
// amount/rate before any side effect. The rate check lives here rather than
// in domain.Convert, so the pure calculator stays aligned with its contract.
func validateExchangeInput(from, to string, amount, rate decimal.Decimal) (domain.CurrencyCode, domain.CurrencyCode, error) {
	fromCode := domain.CurrencyCode(from)
	toCode := domain.CurrencyCode(to)
	if !fromCode.Valid() {
		return "", "", fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, from)
	}
	if !toCode.Valid() {
		return "", "", fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, to)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return "", "", fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return "", "", fmt.Errorf("%w: rate must be greater than zero", apperrors.ErrValidation)
	}
	return fromCode, toCode, nil
}

// CreateExchange records a new exchange transaction and renders its invoice.
func (s *exchangeService) CreateExchange(ctx context.Context, req dto.CreateExchangeRequest) (*dto.ExchangeResponse, error) {
	from, to, err := validateExchangeInput(req.FromCurrency, req.ToCurrency, req.Amount, req.Rate)
	if err != nil {
		return nil, err
	}

	total, op, err := domain.Convert(from, to, req.Amount, req.Rate)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		FromCurrency: from,
		ToCurrency:   to,
		AmountIn:     req.Amount,
		AmountOut:    total,
		Rate:         req.Rate,
		Operation:    op,
		CustomerName: req.CustomerName,
	}

	// Persist first: no invoice may exist for an unrecorded transaction.
	if err := s.txnRepo.SaveTransaction(ctx, &txn); err != nil {
		s.LogError(ctx, err, "Failed to persist exchange transaction")
		return nil, fmt.Errorf("failed to record exchange: %w", err)
	}

	resp := &dto.ExchangeResponse{
		TransactionID: txn.ID,
		Total:         total,
		Operation:     op.Glyph(),
		Rate:          req.Rate,
	}

	// Rendering is best-effort relative to the ledger: a failure is reported
	// to the caller but the committed row stays.
	content, filename, err := s.renderer.Render(txn)
	if err != nil {
		s.LogError(ctx, err, "Invoice rendering failed", slog.Int64("transaction_id", txn.ID))
		resp.InvoiceError = fmt.Sprintf("invoice rendering failed: %v", err)
		return resp, nil
	}
	if err := s.store.Save(filename, content); err != nil {
		s.LogError(ctx, err, "Invoice storage failed", slog.String("filename", filename))
		resp.InvoiceError = fmt.Sprintf("invoice storage failed: %v", err)
		return resp, nil
	}

	resp.InvoiceRef = filename
	s.LogInfo(ctx, "Exchange recorded",
		slog.Int64("transaction_id", txn.ID),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.String("invoice", filename),
	)
	return resp, nil
}

// UpdateTransaction recomputes the total from the revised fields and
// overwrites the row. Date, time and id never change; a missing id is a
// silent no-op by contract.
func (s *exchangeService) UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) error {
	from, to, err := validateExchangeInput(req.FromCurrency, req.ToCurrency, req.Amount, req.Rate)
	if err != nil {
		return err
	}

	total, _, err := domain.Convert(from, to, req.Amount, req.Rate)
	if err != nil {
		return err
	}

	update := portsrepo.TransactionUpdate{
		AmountIn:     req.Amount,
		Rate:         req.Rate,
		AmountOut:    total,
		CustomerName: req.CustomerName,
	}
	if err := s.txnRepo.UpdateTransaction(ctx, id, update); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.Int64("transaction_id", id))
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes one row; a missing id is not an error.
func (s *exchangeService) DeleteTransaction(ctx context.Context, id int64) error {
	if err := s.txnRepo.DeleteTransaction(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.Int64("transaction_id", id))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// DeleteTransactions rejects an empty id set before touching the store.
func (s *exchangeService) DeleteTransactions(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return apperrors.ErrNoIDsProvided
	}
	if err := s.txnRepo.DeleteTransactions(ctx, ids); err != nil {
		s.LogError(ctx, err, "Failed to delete transactions", slog.Int("count", len(ids)))
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	return nil
}

// DeleteAllTransactions empties the ledger.
func (s *exchangeService) DeleteAllTransactions(ctx context.Context) error {
	if err := s.txnRepo.DeleteAllTransactions(ctx); err != nil {
		s.LogError(ctx, err, "Failed to delete all transactions")
		return fmt.Errorf("failed to delete all transactions: %w", err)
	}
	return nil
}

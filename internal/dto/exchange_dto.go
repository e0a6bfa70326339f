package dto

import (
	"github.com/dpk-exchange/exchange_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRequest defines the structure for recording a new exchange.
// Amount/rate positivity is re-checked by the service; binding tags reject the
// obviously malformed input before it gets there.
type CreateExchangeRequest struct {
	FromCurrency string          `json:"from" binding:"required,currencycode"`
	ToCurrency   string          `json:"to" binding:"required,currencycode"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Rate         decimal.Decimal `json:"rate" binding:"required"`
	CustomerName string          `json:"customer" binding:"omitempty,max=100"`
}

// ExchangeResponse is the result of a recorded exchange. InvoiceRef is the
// filename of the rendered invoice; InvoiceError reports a best-effort render
// failure that did not undo the ledger write.
type ExchangeResponse struct {
	TransactionID int64           `json:"transactionID"`
	Total         decimal.Decimal `json:"total"`
	Operation     string          `json:"op"`
	Rate          decimal.Decimal `json:"rate"`
	InvoiceRef    string          `json:"invoiceRef,omitempty"`
	InvoiceError  string          `json:"invoiceError,omitempty"`
}

// UpdateTransactionRequest revises an existing ledger row. The currency pair
// picks the conversion rule for the recomputed total.
type UpdateTransactionRequest struct {
	FromCurrency string          `json:"from" binding:"required,currencycode"`
	ToCurrency   string          `json:"to" binding:"required,currencycode"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Rate         decimal.Decimal `json:"rate" binding:"required"`
	CustomerName string          `json:"customer" binding:"omitempty,max=100"`
}

// DeleteTransactionsRequest carries the id set for a batch delete.
type DeleteTransactionsRequest struct {
	IDs []int64 `json:"ids"`
}

// NotifyTransactionRequest is the snapshot forwarded to the chat channel.
type NotifyTransactionRequest struct {
	FromCurrency string          `json:"from" binding:"required,currencycode"`
	ToCurrency   string          `json:"to" binding:"required,currencycode"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Total        decimal.Decimal `json:"total" binding:"required"`
	Rate         decimal.Decimal `json:"rate" binding:"required"`
	CustomerName string          `json:"customer" binding:"omitempty,max=100"`
}

// ToTransaction converts the notification snapshot into a domain transaction.
func (r NotifyTransactionRequest) ToTransaction() domain.Transaction {
	from := domain.CurrencyCode(r.FromCurrency)
	to := domain.CurrencyCode(r.ToCurrency)
	return domain.Transaction{
		FromCurrency: from,
		ToCurrency:   to,
		AmountIn:     r.Amount,
		AmountOut:    r.Total,
		Rate:         r.Rate,
		Operation:    domain.ConversionOperation(from, to),
		CustomerName: r.CustomerName,
	}
}

package dto

import (
	"time"

	"github.com/dpk-exchange/exchange_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse is one row of a history listing.
type TransactionResponse struct {
	ID           int64           `json:"id"`
	Date         string          `json:"date"` // YYYY-MM-DD
	Time         string          `json:"time"` // HH:MM:SS
	FromCurrency string          `json:"from"`
	ToCurrency   string          `json:"to"`
	AmountIn     decimal.Decimal `json:"in"`
	AmountOut    decimal.Decimal `json:"out"`
	Rate         decimal.Decimal `json:"rate"`
	Operation    string          `json:"op"`
	CustomerName string          `json:"customer"`
}

// ToTransactionResponse converts a domain.Transaction to its listing row.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           txn.ID,
		Date:         txn.Date.Format(time.DateOnly),
		Time:         txn.TimeOfDay,
		FromCurrency: string(txn.FromCurrency),
		ToCurrency:   string(txn.ToCurrency),
		AmountIn:     txn.AmountIn,
		AmountOut:    txn.AmountOut,
		Rate:         txn.Rate,
		Operation:    string(txn.Operation),
		CustomerName: txn.CustomerName,
	}
}

// ToListTransactionResponse converts a history snapshot to listing rows.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(txn)
	}
	return responses
}

// CurrencyFlowResponse mirrors domain.CurrencyFlow for API responses.
type CurrencyFlowResponse struct {
	In  decimal.Decimal `json:"in"`
	Out decimal.Decimal `json:"out"`
}

// DailyStatsResponse is the daily volume report payload.
type DailyStatsResponse struct {
	Stats map[string]CurrencyFlowResponse `json:"stats"`
	Count int                             `json:"count"`
}

// ToDailyStatsResponse converts domain.DailyStats to its API payload.
func ToDailyStatsResponse(stats *domain.DailyStats) DailyStatsResponse {
	out := DailyStatsResponse{
		Stats: make(map[string]CurrencyFlowResponse, len(stats.Totals)),
		Count: stats.PeopleCount,
	}
	for code, flow := range stats.Totals {
		out.Stats[string(code)] = CurrencyFlowResponse{In: flow.In, Out: flow.Out}
	}
	return out
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyCode identifies one of the currencies handled at the counter.
type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	KHR CurrencyCode = "KHR"
	THB CurrencyCode = "THB"
)

// SupportedCurrencies lists every currency the counter accepts, in display order.
var SupportedCurrencies = []CurrencyCode{USD, KHR, THB}

// currencySymbols maps each supported currency to its display glyph.
// Unknown codes render with an empty symbol.
var currencySymbols = map[CurrencyCode]string{
	USD: "$",
	KHR: "៛", // ៛
	THB: "฿", // ฿
}

// Valid reports whether the code is one of the supported currencies.
func (c CurrencyCode) Valid() bool {
	_, ok := currencySymbols[c]
	return ok
}

// Symbol returns the display glyph for the currency, or "" for unknown codes.
func (c CurrencyCode) Symbol() string {
	return currencySymbols[c]
}

// Operation records which arithmetic rule produced a transaction's total.
type Operation string

const (
	Multiply Operation = "multiply"
	Divide   Operation = "divide"
)

// Glyph returns the visual operator used on invoices and notifications.
func (o Operation) Glyph() string {
	if o == Multiply {
		return "×" // ×
	}
	return "÷" // ÷
}

// Transaction is the persisted record of a single currency exchange.
// Date and TimeOfDay are assigned once by the store's clock at creation and
// never mutated by updates. AmountOut is always derived via Convert, never
// supplied independently.
type Transaction struct {
	ID           int64           `json:"id"`
	Date         time.Time       `json:"date"`      // calendar date of creation
	TimeOfDay    string          `json:"time"`      // "HH:MM:SS", same clock as Date
	FromCurrency CurrencyCode    `json:"from"`
	ToCurrency   CurrencyCode    `json:"to"`
	AmountIn     decimal.Decimal `json:"amountIn"`  // positive
	AmountOut    decimal.Decimal `json:"amountOut"` // rounded to 2 fractional digits
	Rate         decimal.Decimal `json:"rate"`      // positive, as supplied by the operator
	Operation    Operation       `json:"operation"`
	CustomerName string          `json:"customer"` // optional; "" means walk-in guest
}

// CreatedAt combines Date and TimeOfDay into a single timestamp.
// A malformed TimeOfDay falls back to midnight of Date.
func (t Transaction) CreatedAt() time.Time {
	clock, err := time.Parse("15:04:05", t.TimeOfDay)
	if err != nil {
		return t.Date
	}
	return time.Date(
		t.Date.Year(), t.Date.Month(), t.Date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, t.Date.Location(),
	)
}

package domain

import (
	"fmt"

	"github.com/dpk-exchange/exchange_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// multiplicativePairs is the hard-coded direction table for conversions.
// KHR and THB are quoted as units per USD/THB, so the higher-value currency is
// always the multiplier base; every pair not listed here divides instead.
var multiplicativePairs = map[[2]CurrencyCode]struct{}{
	{USD, KHR}: {},
	{USD, THB}: {},
	{THB, KHR}: {},
}

// ConversionOperation decides whether an exchange from one currency to
// another multiplies or divides by the quoted rate.
func ConversionOperation(from, to CurrencyCode) Operation {
	if _, ok := multiplicativePairs[[2]CurrencyCode{from, to}]; ok {
		return Multiply
	}
	return Divide
}

// Convert computes the output amount for an exchange. The total is rounded to
// exactly 2 fractional digits, half away from zero, from the full-precision
// rate. Amounts must be positive; rate positivity is the caller's contract.
func Convert(from, to CurrencyCode, amount, rate decimal.Decimal) (decimal.Decimal, Operation, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, "", fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	op := ConversionOperation(from, to)

	var total decimal.Decimal
	if op == Multiply {
		total = amount.Mul(rate)
	} else {
		total = amount.Div(rate)
	}

	return total.Round(2), op, nil
}

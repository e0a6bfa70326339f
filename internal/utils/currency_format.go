package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatGrouped renders an amount with a fixed number of fractional digits
// and comma thousands separators, e.g. 410000 at 2 places -> "410,000.00".
func FormatGrouped(amount decimal.Decimal, places int32) string {
	s := amount.StringFixed(places)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	b.WriteString(fracPart)
	return b.String()
}

// FormatAmount renders a monetary amount: 2 fractional digits, grouped.
func FormatAmount(amount decimal.Decimal) string {
	return FormatGrouped(amount, 2)
}

// FormatRate renders an exchange rate for display: 4 fractional digits,
// grouped. Display rounding only; computations keep full precision.
func FormatRate(rate decimal.Decimal) string {
	return FormatGrouped(rate, 4)
}

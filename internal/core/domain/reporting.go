package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/dpk-exchange/exchange_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// HistoryLimit caps every history listing; the sequence is a finite snapshot
// with no pagination cursor.
const HistoryLimit = 200

// Period names a calendar-day window used to bound history queries.
type Period string

const (
	PeriodAll   Period = "all"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Valid reports whether the period is one of the named windows.
func (p Period) Valid() bool {
	switch p {
	case PeriodAll, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// LowerBound returns the inclusive date lower bound for the period relative
// to today. The second return is false for PeriodAll, which is unbounded.
// Comparison is at calendar-day granularity; time of day never participates.
func (p Period) LowerBound(today time.Time) (time.Time, bool) {
	days := 0
	switch p {
	case PeriodWeek:
		days = 7
	case PeriodMonth:
		days = 30
	case PeriodYear:
		days = 365
	default:
		return time.Time{}, false
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return day.AddDate(0, 0, -days), true
}

// PairFilter constrains a history query to an exact currency pair.
// A nil *PairFilter means "all pairs".
type PairFilter struct {
	From CurrencyCode
	To   CurrencyCode
}

// ParsePairFilter parses a "FROM_TO" pair expression, e.g. "USD_KHR".
// The literal "all" (or "") yields a nil filter.
func ParsePairFilter(s string) (*PairFilter, error) {
	if s == "" || s == "all" {
		return nil, nil
	}
	parts := strings.Split(s, "_")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: pair filter must be FROM_TO, got %q", apperrors.ErrValidation, s)
	}
	from := CurrencyCode(parts[0])
	to := CurrencyCode(parts[1])
	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("%w: unknown currency in pair filter %q", apperrors.ErrValidation, s)
	}
	return &PairFilter{From: from, To: to}, nil
}

// CurrencyFlow holds one currency's inbound and outbound sums for a day.
type CurrencyFlow struct {
	In  decimal.Decimal `json:"in"`
	Out decimal.Decimal `json:"out"`
}

// DailyStats is the per-currency volume view for the store's current date.
// PeopleCount counts walk-in guests (blank customer name) individually plus
// distinct named customers, so repeat visits by the same named customer count
// once.
type DailyStats struct {
	Totals      map[CurrencyCode]CurrencyFlow `json:"totals"`
	PeopleCount int                           `json:"peopleCount"`
}

// NewDailyStats returns a stats view with zeroed flows for every supported
// currency, so renderers never see a missing key.
func NewDailyStats() *DailyStats {
	totals := make(map[CurrencyCode]CurrencyFlow, len(SupportedCurrencies))
	for _, c := range SupportedCurrencies {
		totals[c] = CurrencyFlow{In: decimal.Zero, Out: decimal.Zero}
	}
	return &DailyStats{Totals: totals}
}

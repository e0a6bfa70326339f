package domain_test

import (
	"testing"
	"time"

	"github.com/dpk-exchange/exchange_backend/internal/apperrors"
	"github.com/dpk-exchange/exchange_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyCode_Symbol(t *testing.T) {
	assert.Equal(t, "$", domain.USD.Symbol())
	assert.Equal(t, "៛", domain.KHR.Symbol())
	assert.Equal(t, "฿", domain.THB.Symbol())
	assert.Equal(t, "", domain.CurrencyCode("EUR").Symbol())
}

func TestCurrencyCode_Valid(t *testing.T) {
	assert.True(t, domain.USD.Valid())
	assert.True(t, domain.KHR.Valid())
	assert.True(t, domain.THB.Valid())
	assert.False(t, domain.CurrencyCode("eur").Valid())
	assert.False(t, domain.CurrencyCode("").Valid())
}

func TestOperation_Glyph(t *testing.T) {
	assert.Equal(t, "×", domain.Multiply.Glyph())
	assert.Equal(t, "÷", domain.Divide.Glyph())
}

func TestTransaction_CreatedAt(t *testing.T) {
	txn := domain.Transaction{
		Date:      time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		TimeOfDay: "14:05:09",
	}
	assert.Equal(t, time.Date(2026, 8, 28, 14, 5, 9, 0, time.UTC), txn.CreatedAt())

	// Malformed time of day falls back to midnight.
	txn.TimeOfDay = "not-a-time"
	assert.Equal(t, txn.Date, txn.CreatedAt())
}

func TestPeriod_LowerBound(t *testing.T) {
	today := time.Date(2026, 8, 28, 17, 30, 0, 0, time.UTC)

	tests := []struct {
		period  domain.Period
		want    time.Time
		bounded bool
	}{
		{domain.PeriodWeek, time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC), true},
		{domain.PeriodMonth, time.Date(2026, 7, 29, 0, 0, 0, 0, time.UTC), true},
		{domain.PeriodYear, time.Date(2025, 8, 28, 0, 0, 0, 0, time.UTC), true},
		{domain.PeriodAll, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			got, bounded := tt.period.LowerBound(today)
			assert.Equal(t, tt.bounded, bounded)
			if tt.bounded {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParsePairFilter(t *testing.T) {
	pair, err := domain.ParsePairFilter("USD_KHR")
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.Equal(t, domain.USD, pair.From)
	assert.Equal(t, domain.KHR, pair.To)

	for _, all := range []string{"all", ""} {
		pair, err := domain.ParsePairFilter(all)
		require.NoError(t, err)
		assert.Nil(t, pair)
	}

	for _, bad := range []string{"USDKHR", "USD_EUR", "XXX_KHR", "USD_KHR_THB"} {
		_, err := domain.ParsePairFilter(bad)
		assert.ErrorIs(t, err, apperrors.ErrValidation, bad)
	}
}

func TestNewDailyStats_ZeroesEveryCurrency(t *testing.T) {
	stats := domain.NewDailyStats()
	require.Len(t, stats.Totals, 3)
	for _, c := range domain.SupportedCurrencies {
		flow, ok := stats.Totals[c]
		require.True(t, ok, string(c))
		assert.True(t, flow.In.IsZero())
		assert.True(t, flow.Out.IsZero())
	}
}

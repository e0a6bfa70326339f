package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dpk-exchange/exchange_backend/internal/adapters/notify"
	"github.com/dpk-exchange/exchange_backend/internal/apperrors"
	"github.com/dpk-exchange/exchange_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransaction() domain.Transaction {
	return domain.Transaction{
		ID:           42,
		Date:         time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		TimeOfDay:    "10:15:00",
		FromCurrency: domain.USD,
		ToCurrency:   domain.KHR,
		AmountIn:     decimal.RequireFromString("100"),
		AmountOut:    decimal.RequireFromString("410000"),
		Rate:         decimal.RequireFromString("4100"),
		Operation:    domain.Multiply,
		CustomerName: "Dara",
	}
}

func TestFormatTransaction(t *testing.T) {
	at := time.Date(2025, 6, 15, 10, 15, 0, 0, time.UTC)

	got := notify.FormatTransaction(sampleTransaction(), at)

	want := "<b>Saved Record - DPK Exchange</b>\n" +
		"2025-06-15 10:15:00\n\n" +
		"From: 100.00 $ (USD)\n" +
		"To: 410,000.00 ៛ (KHR)\n" +
		"Rate: 1 USD = 4,100.0000 KHR\n" +
		"Calculation: 100.00 × 4,100.0000 = 410,000.00\n" +
		"Customer: Dara"
	assert.Equal(t, want, got)
}

func TestFormatTransaction_GuestOmitsCustomerLine(t *testing.T) {
	txn := sampleTransaction()
	txn.CustomerName = ""

	got := notify.FormatTransaction(txn, time.Date(2025, 6, 15, 10, 15, 0, 0, time.UTC))

	assert.NotContains(t, got, "Customer:")
}

func TestNotifyTransaction_SendsExpectedPayload(t *testing.T) {
	var gotPath string
	var gotPayload map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer srv.Close()

	n := notify.NewTelegramNotifierWithClient("test-token", "12345", srv.URL, srv.Client())

	err := n.NotifyTransaction(context.Background(), sampleTransaction())
	require.NoError(t, err)

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "12345", gotPayload["chat_id"])
	assert.Equal(t, "HTML", gotPayload["parse_mode"])
	assert.Contains(t, gotPayload["text"], "<b>Saved Record - DPK Exchange</b>")
	assert.Contains(t, gotPayload["text"], "Customer: Dara")
}

func TestNotifyTransaction_MissingCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without credentials")
	}))
	defer srv.Close()

	n := notify.NewTelegramNotifierWithClient("", "", srv.URL, srv.Client())

	err := n.NotifyTransaction(context.Background(), sampleTransaction())
	assert.True(t, errors.Is(err, apperrors.ErrNotificationUnavailable))
}

func TestNotifyTransaction_APIRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "description": "chat not found"})
	}))
	defer srv.Close()

	n := notify.NewTelegramNotifierWithClient("test-token", "12345", srv.URL, srv.Client())

	err := n.NotifyTransaction(context.Background(), sampleTransaction())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotificationUnavailable))
	assert.Contains(t, err.Error(), "chat not found")
}

func TestNotifyTransaction_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	n := notify.NewTelegramNotifierWithClient("test-token", "12345", srv.URL, &http.Client{Timeout: time.Second})

	err := n.NotifyTransaction(context.Background(), sampleTransaction())
	assert.True(t, errors.Is(err, apperrors.ErrNotificationUnavailable))
}

package invoice_test

import (
	"testing"
	"time"

	"github.com/dpk-exchange/exchange_backend/internal/adapters/invoice"
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

func TestInvoiceFilename(t *testing.T) {
	got := invoice.InvoiceFilename(sampleTransaction())
	assert.Equal(t, "DPK_Invoice_20250615_101500_42.pdf", got)
}

func TestRender_ProducesPDF(t *testing.T) {
	renderer := invoice.NewPDFInvoiceRenderer()

	content, filename, err := renderer.Render(sampleTransaction())
	require.NoError(t, err)
	require.NotEmpty(t, content)
	assert.Equal(t, "DPK_Invoice_20250615_101500_42.pdf", filename)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestRender_Deterministic(t *testing.T) {
	renderer := invoice.NewPDFInvoiceRenderer()
	txn := sampleTransaction()

	first, _, err := renderer.Render(txn)
	require.NoError(t, err)
	second, _, err := renderer.Render(txn)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same transaction must render identical bytes")
}

func TestRender_CustomerLineChangesOutput(t *testing.T) {
	renderer := invoice.NewPDFInvoiceRenderer()

	named := sampleTransaction()
	guest := sampleTransaction()
	guest.CustomerName = ""

	withName, _, err := renderer.Render(named)
	require.NoError(t, err)
	withoutName, _, err := renderer.Render(guest)
	require.NoError(t, err)

	assert.NotEqual(t, withName, withoutName)
}

func TestRender_DividingPair(t *testing.T) {
	renderer := invoice.NewPDFInvoiceRenderer()
	txn := sampleTransaction()
	txn.FromCurrency = domain.KHR
	txn.ToCurrency = domain.USD
	txn.AmountIn = decimal.RequireFromString("410000")
	txn.AmountOut = decimal.RequireFromString("100")
	txn.Operation = domain.Divide

	content, _, err := renderer.Render(txn)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}

package invoice_test

import (
	"errors"
	"testing"

	"github.com/dpk-exchange/exchange_backend/internal/adapters/invoice"
	"github.com/dpk-exchange/exchange_backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileInvoiceStore_SaveFetchRoundtrip(t *testing.T) {
	store, err := invoice.NewFileInvoiceStore(t.TempDir())
	require.NoError(t, err)

	content := []byte("%PDF-1.3 fake")
	require.NoError(t, store.Save("DPK_Invoice_20250615_101500_1.pdf", content))

	got, err := store.Fetch("DPK_Invoice_20250615_101500_1.pdf")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestFileInvoiceStore_FetchUnknown(t *testing.T) {
	store, err := invoice.NewFileInvoiceStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Fetch("DPK_Invoice_20250615_101500_999.pdf")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestFileInvoiceStore_RejectsUnsafeFilenames(t *testing.T) {
	store, err := invoice.NewFileInvoiceStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../escape.pdf", "a/b.pdf", ".hidden"} {
		assert.Error(t, store.Save(name, []byte("x")), "save %q", name)

		_, err := store.Fetch(name)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound), "fetch %q", name)
	}
}

func TestFileInvoiceStore_SaveNeverOverwrites(t *testing.T) {
	store, err := invoice.NewFileInvoiceStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("dup.pdf", []byte("first")))
	assert.Error(t, store.Save("dup.pdf", []byte("second")))

	got, err := store.Fetch("dup.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got)
}

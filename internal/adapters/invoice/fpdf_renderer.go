package invoice

import (
	"bytes"
	"fmt"

	"github.com/dpk-exchange/exchange_backend/internal/core/domain"
	portssvc "github.com/dpk-exchange/exchange_backend/internal/core/ports/services"
	"github.com/dpk-exchange/exchange_backend/internal/utils"
	"github.com/go-pdf/fpdf"
)

// PDFInvoiceRenderer renders the fixed-layout A5 receipt for a transaction.
// Output is deterministic: the PDF creation date is pinned to the
// transaction's own timestamp, so rendering the same transaction twice yields
// identical bytes.
type PDFInvoiceRenderer struct{}

// NewPDFInvoiceRenderer creates a new PDFInvoiceRenderer.
func NewPDFInvoiceRenderer() *PDFInvoiceRenderer {
	return &PDFInvoiceRenderer{}
}

// filenamePrefix is the fixed prefix of every invoice document.
const filenamePrefix = "DPK_Invoice"

// InvoiceFilename derives the document filename from the creation timestamp
// at second granularity plus the ledger-assigned id. The id suffix keeps
// filenames unique when two invoices are rendered within the same second.
func InvoiceFilename(txn domain.Transaction) string {
	stamp := txn.CreatedAt().Format("20060102_150405")
	return fmt.Sprintf("%s_%s_%d.pdf", filenamePrefix, stamp, txn.ID)
}

// Render produces the invoice document bytes and its suggested filename.
func (r *PDFInvoiceRenderer) Render(txn domain.Transaction) ([]byte, string, error) {
	createdAt := txn.CreatedAt()

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetCreationDate(createdAt)
	pdf.SetModificationDate(createdAt)
	pdf.SetAutoPageBreak(false, 15)
	pdf.AddPage()

	// Helvetica is a cp1252 core font; the translator maps the operator
	// glyphs into it. Currency symbols outside cp1252 are rendered as codes.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(0, 102, 204)
	pdf.CellFormat(0, 12, "DPK Exchange", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 8, "Official Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(0, 8, "Receipt No: "+createdAt.Format("20060102_150405"), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, "Date: "+createdAt.Format("02 January 2006"), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, "Time: "+createdAt.Format("15:04:05"), "", 1, "C", false, 0, "")
	if txn.CustomerName != "" {
		pdf.Ln(2)
		pdf.CellFormat(0, 8, "Customer: "+tr(txn.CustomerName), "", 1, "C", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, pdf.GetY(), 133, pdf.GetY())
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Exchange Details", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	amountIn := utils.FormatAmount(txn.AmountIn)
	amountOut := utils.FormatAmount(txn.AmountOut)
	rate := utils.FormatRate(txn.Rate)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("From: %s %s", amountIn, txn.FromCurrency), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("To:   %s %s", amountOut, txn.ToCurrency), "", 1, "", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("Rate: 1 %s = %s %s", txn.FromCurrency, rate, txn.ToCurrency), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("%s %s %s = %s", amountIn, txn.Operation.Glyph(), rate, amountOut)), "", 1, "", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 10, "Thank you for using DPK Exchange!", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 8, "Phnom Penh, Cambodia", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("error rendering invoice for transaction %d: %w", txn.ID, err)
	}

	return buf.Bytes(), InvoiceFilename(txn), nil
}

// Compile-time interface check
var _ portssvc.InvoiceRenderer = (*PDFInvoiceRenderer)(nil)

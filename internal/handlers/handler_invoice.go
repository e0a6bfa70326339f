package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dpk-exchange/exchange_backend/internal/apperrors"
	portssvc "github.com/dpk-exchange/exchange_backend/internal/core/ports/services"
	"github.com/dpk-exchange/exchange_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler serves previously rendered invoice documents.
type invoiceHandler struct {
	store portssvc.InvoiceStore
}

func newInvoiceHandler(store portssvc.InvoiceStore) *invoiceHandler {
	return &invoiceHandler{store: store}
}

// registerInvoiceRoutes registers the invoice download route.
func registerInvoiceRoutes(rg *gin.RouterGroup, store portssvc.InvoiceStore) {
	h := newInvoiceHandler(store)

	rg.GET("/invoices/:filename", h.downloadInvoice)
}

func (h *invoiceHandler) downloadInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	filename := c.Param("filename")

	content, err := h.store.Fetch(filename)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		logger.Error("Failed to fetch invoice", slog.String("filename", filename), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoice"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", content)
}

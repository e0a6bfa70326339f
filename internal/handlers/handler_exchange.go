package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dpk-exchange/exchange_backend/internal/apperrors"
	portssvc "github.com/dpk-exchange/exchange_backend/internal/core/ports/services"
	"github.com/dpk-exchange/exchange_backend/internal/dto"
	"github.com/dpk-exchange/exchange_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeHandler handles HTTP requests for the ledger write path and the
// chat notification endpoint.
type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
	notifier        portssvc.Notifier
}

// newExchangeHandler creates a new exchangeHandler.
func newExchangeHandler(es portssvc.ExchangeSvcFacade, n portssvc.Notifier) *exchangeHandler {
	return &exchangeHandler{
		exchangeService: es,
		notifier:        n,
	}
}

// registerExchangeRoutes registers the write-path and notification routes.
func registerExchangeRoutes(rg *gin.RouterGroup, es portssvc.ExchangeSvcFacade, n portssvc.Notifier) {
	h := newExchangeHandler(es, n)

	rg.POST("/exchange", h.createExchange)
	rg.POST("/notify", h.notifyTransaction)

	transactions := rg.Group("/transactions")
	{
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
		transactions.POST("/delete-batch", h.deleteTransactions)
		transactions.DELETE("", h.deleteAllTransactions)
	}
}

func (h *exchangeHandler) createExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received exchange request",
		slog.String("from", req.FromCurrency),
		slog.String("to", req.ToCurrency),
		slog.Any("amount", req.Amount),
		slog.Any("rate", req.Rate),
	)

	resp, err := h.exchangeService.CreateExchange(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording exchange", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record exchange", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record exchange"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *exchangeHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.exchangeService.UpdateTransaction(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update transaction", slog.Int64("id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *exchangeHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
		return
	}

	// Deleting a missing id is a success by contract.
	if err := h.exchangeService.DeleteTransaction(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete transaction", slog.Int64("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *exchangeHandler) deleteTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DeleteTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DeleteTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.exchangeService.DeleteTransactions(c.Request.Context(), req.IDs); err != nil {
		if errors.Is(err, apperrors.ErrNoIDsProvided) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No IDs provided"})
		} else {
			logger.Error("Failed to delete transactions", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transactions"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *exchangeHandler) deleteAllTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.exchangeService.DeleteAllTransactions(c.Request.Context()); err != nil {
		logger.Error("Failed to delete all transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete all transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// notifyTransaction forwards a transaction snapshot to the chat channel.
// The ledger write (if any) already happened; failure here is soft.
func (h *exchangeHandler) notifyTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.NotifyTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for NotifyTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.notifier.NotifyTransaction(c.Request.Context(), req.ToTransaction()); err != nil {
		logger.Warn("Notification delivery failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

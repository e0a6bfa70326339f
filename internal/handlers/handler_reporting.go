package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dpk-exchange/exchange_backend/internal/apperrors"
	portssvc "github.com/dpk-exchange/exchange_backend/internal/core/ports/services"
	"github.com/dpk-exchange/exchange_backend/internal/dto"
	"github.com/dpk-exchange/exchange_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the ledger read path.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers history and daily-stats routes.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newReportingHandler(rs)

	rg.GET("/transactions", h.listHistory)
	rg.GET("/stats/daily", h.dailyStats)
}

func (h *reportingHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	period := c.DefaultQuery("period", "all")
	pair := c.DefaultQuery("pair", "all")

	txns, err := h.reportingService.ListHistory(c.Request.Context(), period, pair)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error listing history", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list history", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list history"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

func (h *reportingHandler) dailyStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, err := h.reportingService.DailyStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to aggregate daily stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate daily stats"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyStatsResponse(stats))
}

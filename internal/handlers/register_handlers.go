package handlers

import (
	"github.com/dpk-exchange/exchange_backend/internal/core/domain"
	portssvc "github.com/dpk-exchange/exchange_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")

	registerExchangeRoutes(v1, services.Exchange, services.Notifier)
	registerReportingRoutes(v1, services.Reporting)
	registerInvoiceRoutes(v1, services.Invoices)
}

// registerCustomValidators adds the currencycode validation used by request
// DTO binding tags: the closed currency enum of the counter.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
			return domain.CurrencyCode(fl.Field().String()).Valid()
		})
	}
}

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dpk-exchange/exchange_backend/internal/adapters/database/pgsql"
	"github.com/dpk-exchange/exchange_backend/internal/adapters/invoice"
	"github.com/dpk-exchange/exchange_backend/internal/adapters/notify"
	"github.com/dpk-exchange/exchange_backend/internal/core/services"
	"github.com/dpk-exchange/exchange_backend/internal/handlers"
	"github.com/dpk-exchange/exchange_backend/internal/middleware"
	"github.com/dpk-exchange/exchange_backend/pkg/config"
	"github.com/dpk-exchange/exchange_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	if err := pgsql.EnsureSchema(ctx, dbPool); err != nil {
		logger.Error("Failed to ensure database schema", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database schema ready.")

	repos := pgsql.NewRepositoryProvider(dbPool)

	renderer := invoice.NewPDFInvoiceRenderer()
	store, err := invoice.NewFileInvoiceStore(cfg.InvoiceDir)
	if err != nil {
		logger.Error("Failed to initialize invoice store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	notifier := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID, cfg.NotifyTimeout)

	container := services.NewServiceContainer(repos, renderer, store, notifier)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	r.Use(cors.New(corsCfg))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("value", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	handlers.RegisterRoutes(r, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	InvoiceDir     string
	TelegramToken  string
	TelegramChatID string
	NotifyTimeout  time.Duration
	RateLimit      string
	CORSOrigins    []string
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first; a missing file is not an error.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("INVOICE_DIR", "invoices")
	v.SetDefault("NOTIFY_TIMEOUT", "10s")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ORIGINS", []string{"*"})

	return &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		InvoiceDir:     v.GetString("INVOICE_DIR"),
		TelegramToken:  v.GetString("TELEGRAM_BOT_TOKEN"),
		TelegramChatID: v.GetString("TELEGRAM_CHAT_ID"),
		NotifyTimeout:  v.GetDuration("NOTIFY_TIMEOUT"),
		RateLimit:      v.GetString("RATE_LIMIT"),
		CORSOrigins:    v.GetStringSlice("CORS_ORIGINS"),
	}, nil
}

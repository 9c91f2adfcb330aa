package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config represents application configuration
type Config struct {
	Provider   ProviderConfig
	NewsSearch NewsSearchConfig
	Universe   UniverseConfig
	Aggregator AggregatorConfig
	HTTP       HTTPConfig
	Report     ReportConfig
	Telegram   TelegramConfig
	Logging    LoggingConfig
}

// ProviderConfig configures the primary stock/news API client.
// AuthHeader selects which auth strategy is attempted first; the client
// still retries with the api_key query parameter on failure.
type ProviderConfig struct {
	BaseURL    string        `envconfig:"STOCK_API_BASE_URL" default:"https://stock.indianapi.in"`
	APIKey     string        `envconfig:"STOCK_API_KEY" required:"false"`
	AuthHeader string        `envconfig:"STOCK_API_AUTH_HEADER" default:"x-api-key"`
	Timeout    time.Duration `envconfig:"STOCK_API_TIMEOUT" default:"15s"`
}

// NewsSearchConfig configures the optional news-search fallback provider
// (Event Registry style article search).
type NewsSearchConfig struct {
	APIKey  string        `envconfig:"NEWSAPI_AI_KEY" required:"false"`
	BaseURL string        `envconfig:"NEWSAPI_AI_BASE_URL" default:"https://eventregistry.org/api/v1"`
	Timeout time.Duration `envconfig:"NEWSAPI_AI_TIMEOUT" default:"15s"`
}

// UniverseConfig selects the ticker universe
type UniverseConfig struct {
	Market string `envconfig:"UNIVERSE_MARKET" default:"indian"` // indian or us
}

// AggregatorConfig tunes the news fan-out and the aggregate cache
type AggregatorConfig struct {
	CacheTTL       time.Duration `envconfig:"NEWS_CACHE_TTL" default:"5m"`
	MaxConcurrent  int           `envconfig:"NEWS_MAX_CONCURRENT" default:"20"`
	FetchTimeout   time.Duration `envconfig:"NEWS_FETCH_TIMEOUT" default:"5s"`
	PerTickerLimit int           `envconfig:"NEWS_PER_TICKER_LIMIT" default:"10"`
}

// HTTPConfig configures the JSON facade
type HTTPConfig struct {
	Port            int           `envconfig:"HTTP_PORT" default:"8000"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"10s"`
}

// ReportConfig configures the daily CSV email report
type ReportConfig struct {
	Schedule   string `envconfig:"REPORT_CRON" required:"false"` // cron expression, empty disables in-process runs
	OutputPath string `envconfig:"REPORT_OUTPUT_PATH" default:"recommendations_daily.csv"`
	SMTP       SMTPConfig
}

// SMTPConfig holds mail delivery credentials
type SMTPConfig struct {
	Host      string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port      int    `envconfig:"SMTP_PORT" default:"465"`
	Username  string `envconfig:"SMTP_USER" required:"false"`
	Password  string `envconfig:"SMTP_PASSWORD" required:"false"`
	From      string `envconfig:"SMTP_FROM" required:"false"`
	Recipient string `envconfig:"REPORT_RECIPIENT" required:"false"`
}

// TelegramConfig configures the optional report summary notifier
type TelegramConfig struct {
	BotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"false"`
	ChatID   int64  `envconfig:"TELEGRAM_CHAT_ID" required:"false"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE" required:"false"`
}

// Load reads configuration from .env (if present) and environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	// API keys pasted from dashboards often carry stray whitespace
	cfg.Provider.APIKey = strings.TrimSpace(cfg.Provider.APIKey)
	cfg.NewsSearch.APIKey = strings.TrimSpace(cfg.NewsSearch.APIKey)
	cfg.Report.SMTP.Password = strings.ReplaceAll(cfg.Report.SMTP.Password, " ", "")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if configuration is valid. A missing provider API key is a
// hard error: recommendations without a news source are meaningless.
func (c *Config) Validate() error {
	if c.Provider.APIKey == "" {
		return fmt.Errorf("STOCK_API_KEY must be set")
	}
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("STOCK_API_BASE_URL must be set")
	}

	switch c.Universe.Market {
	case "indian", "us":
	default:
		return fmt.Errorf("UNIVERSE_MARKET must be indian or us, got %q", c.Universe.Market)
	}

	if c.Aggregator.MaxConcurrent < 1 {
		return fmt.Errorf("NEWS_MAX_CONCURRENT must be at least 1")
	}
	if c.Aggregator.CacheTTL <= 0 {
		return fmt.Errorf("NEWS_CACHE_TTL must be positive")
	}
	if c.Aggregator.PerTickerLimit < 1 {
		return fmt.Errorf("NEWS_PER_TICKER_LIMIT must be at least 1")
	}

	return nil
}

// MailConfigured reports whether SMTP delivery is fully configured
func (c *ReportConfig) MailConfigured() bool {
	s := c.SMTP
	return s.Host != "" && s.Username != "" && s.Password != "" && s.Recipient != ""
}

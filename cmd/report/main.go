package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/stocksense/advisor/internal/adapters/config"
	"github.com/stocksense/advisor/internal/adapters/provider"
	"github.com/stocksense/advisor/internal/adapters/telegram"
	"github.com/stocksense/advisor/internal/aggregator"
	"github.com/stocksense/advisor/internal/cache"
	"github.com/stocksense/advisor/internal/enrichment"
	"github.com/stocksense/advisor/internal/recommend"
	"github.com/stocksense/advisor/internal/reports"
	"github.com/stocksense/advisor/internal/sentiment"
	"github.com/stocksense/advisor/internal/universe"
	"github.com/stocksense/advisor/pkg/logger"
)

// One-shot report runner for external schedulers (cron, CI). Exits non-zero
// when the report could not be generated or delivered.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("daily report run starting",
		zap.String("market", cfg.Universe.Market),
		zap.String("output", cfg.Report.OutputPath),
	)

	uni, err := universe.ForMarket(cfg.Universe.Market)
	if err != nil {
		return err
	}

	primary, err := provider.NewClient(cfg.Provider)
	if err != nil {
		return fmt.Errorf("failed to create provider client: %w", err)
	}

	var fallback provider.NewsProvider
	if sc := provider.NewSearchClient(cfg.NewsSearch); sc != nil {
		fallback = sc
	}

	store := cache.New(cfg.Aggregator.CacheTTL)
	agg := aggregator.New(primary, fallback, uni, store, aggregator.Options{
		MaxConcurrent:  cfg.Aggregator.MaxConcurrent,
		FetchTimeout:   cfg.Aggregator.FetchTimeout,
		PerTickerLimit: cfg.Aggregator.PerTickerLimit,
	})

	engine := recommend.New(agg, sentiment.NewAnalyzer(), enrichment.NewService(primary), uni)

	notifier, err := telegram.NewNotifier(cfg.Telegram)
	if err != nil {
		return fmt.Errorf("failed to create telegram notifier: %w", err)
	}

	var reportNotifier reports.Notifier
	if notifier != nil {
		reportNotifier = notifier
	}
	job := reports.NewJob(
		reports.NewGenerator(engine),
		reports.NewMailer(cfg.Report.SMTP),
		reportNotifier,
		cfg.Report,
	)

	return job.Run(ctx)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

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
	"github.com/stocksense/advisor/internal/server"
	"github.com/stocksense/advisor/internal/universe"
	"github.com/stocksense/advisor/internal/workers"
	"github.com/stocksense/advisor/pkg/logger"
	"github.com/stocksense/advisor/pkg/worker"
)

func main() {
	// Setup signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
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

	logger.Info("stock advisor starting",
		zap.String("market", cfg.Universe.Market),
		zap.Int("port", cfg.HTTP.Port),
	)

	uni, err := universe.ForMarket(cfg.Universe.Market)
	if err != nil {
		return err
	}

	primary, err := provider.NewClient(cfg.Provider)
	if err != nil {
		return fmt.Errorf("failed to create provider client: %w", err)
	}

	// Optional fallback; nil when no search API key is configured.
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

	enrich := enrichment.NewService(primary)
	engine := recommend.New(agg, sentiment.NewAnalyzer(), enrich, uni)

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

	// Keep the news cache warm in the background.
	refresher := worker.RunBackground(ctx, workers.NewNewsRefresher(agg), cfg.Aggregator.CacheTTL)
	defer refresher.Stop(10 * time.Second)

	// Optional in-process report schedule.
	scheduler := reports.NewScheduler(job, cfg.Report.Schedule)
	if err := scheduler.Start(ctx); err != nil {
		return err
	}
	defer scheduler.Stop()

	srv := server.New(cfg.HTTP, server.NewHandler(agg, engine, enrich, uni, job))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down gracefully...")
	return srv.Shutdown(context.Background())
}

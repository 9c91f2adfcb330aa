package aggregator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/stocksense/advisor/internal/adapters/provider"
	"github.com/stocksense/advisor/internal/cache"
	"github.com/stocksense/advisor/internal/universe"
	"github.com/stocksense/advisor/pkg/logger"
	"github.com/stocksense/advisor/pkg/models"
)

// cacheKeyAllNews is the single key under which the full universe fan-out
// result is cached.
const cacheKeyAllNews = "news:all"

// Options tunes the fan-out.
type Options struct {
	MaxConcurrent  int
	FetchTimeout   time.Duration
	PerTickerLimit int
}

func (o Options) withDefaults() Options {
	if o.MaxConcurrent < 1 {
		o.MaxConcurrent = 20
	}
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = 5 * time.Second
	}
	if o.PerTickerLimit < 1 {
		o.PerTickerLimit = 10
	}
	return o
}

// Aggregator fans news fetches out over a ticker universe. Each ticker is
// fetched under its own timeout so one slow symbol cannot stall the batch,
// and a ticker whose fetch fails simply contributes nothing. Items are
// stamped with their ticker here, never by the providers.
type Aggregator struct {
	primary  provider.NewsProvider
	fallback provider.NewsProvider
	universe *universe.Universe
	store    *cache.Store
	opts     Options
	useCache bool
}

// New creates an aggregator. fallback may be nil; store may be nil to
// disable caching.
func New(primary provider.NewsProvider, fallback provider.NewsProvider, uni *universe.Universe, store *cache.Store, opts Options) *Aggregator {
	return &Aggregator{
		primary:  primary,
		fallback: fallback,
		universe: uni,
		store:    store,
		opts:     opts.withDefaults(),
		useCache: store != nil,
	}
}

// FetchAllNews fetches news for every ticker in the universe, serving from
// the cache when a fresh batch exists. The result preserves the universe's
// canonical ticker order; tickers with no news contribute no items.
func (a *Aggregator) FetchAllNews(ctx context.Context) ([]models.NewsItem, error) {
	if a.useCache {
		if v, ok := a.store.Get(cacheKeyAllNews); ok {
			if items, ok := v.([]models.NewsItem); ok {
				logger.Debug("serving news from cache", zap.Int("items", len(items)))
				return items, nil
			}
		}
	}

	items, err := a.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	if a.useCache {
		a.store.Set(cacheKeyAllNews, items)
	}
	return items, nil
}

// FetchTicker fetches news for a single ticker, bypassing the batch cache.
func (a *Aggregator) FetchTicker(ctx context.Context, ticker string) []models.NewsItem {
	return a.fetchOne(ctx, ticker)
}

// Invalidate drops the cached batch so the next call refetches.
func (a *Aggregator) Invalidate() {
	if a.useCache {
		a.store.Delete(cacheKeyAllNews)
	}
}

func (a *Aggregator) fetchAll(ctx context.Context) ([]models.NewsItem, error) {
	symbols := a.universe.Symbols()

	type result struct {
		pos   int
		items []models.NewsItem
	}

	results := make(chan result, len(symbols))
	sem := make(chan struct{}, a.opts.MaxConcurrent)

	started := time.Now()
	for pos, ticker := range symbols {
		go func(pos int, ticker string) {
			sem <- struct{}{}
			defer func() { <-sem }()

			results <- result{pos: pos, items: a.fetchOne(ctx, ticker)}
		}(pos, ticker)
	}

	// Collect and re-join in canonical universe order.
	perTicker := make([][]models.NewsItem, len(symbols))
	for range symbols {
		res := <-results
		perTicker[res.pos] = res.items
	}

	all := make([]models.NewsItem, 0, len(symbols))
	covered := 0
	for _, items := range perTicker {
		if len(items) > 0 {
			covered++
		}
		all = append(all, items...)
	}

	logger.Info("news fan-out complete",
		zap.Int("tickers", len(symbols)),
		zap.Int("with_news", covered),
		zap.Int("items", len(all)),
		zap.Duration("took", time.Since(started)),
	)
	return all, nil
}

// fetchOne fetches news for one ticker under its own timeout, consulting the
// fallback provider only when the primary returned nothing.
func (a *Aggregator) fetchOne(ctx context.Context, ticker string) []models.NewsItem {
	tctx, cancel := context.WithTimeout(ctx, a.opts.FetchTimeout)
	defer cancel()

	items, err := a.primary.FetchNews(tctx, ticker, a.opts.PerTickerLimit)
	if err != nil {
		logger.Warn("primary news fetch failed",
			zap.String("ticker", ticker),
			zap.String("provider", a.primary.GetName()),
			zap.Error(err),
		)
		items = nil
	}

	if len(items) == 0 && a.fallback != nil {
		fbItems, fbErr := a.fallback.FetchNews(tctx, ticker, a.opts.PerTickerLimit)
		if fbErr != nil {
			logger.Warn("fallback news fetch failed",
				zap.String("ticker", ticker),
				zap.String("provider", a.fallback.GetName()),
				zap.Error(fbErr),
			)
		} else {
			items = fbItems
		}
	}

	if len(items) > a.opts.PerTickerLimit {
		items = items[:a.opts.PerTickerLimit]
	}

	stamped := make([]models.NewsItem, 0, len(items))
	for _, item := range items {
		item.Ticker = ticker
		stamped = append(stamped, item)
	}
	return stamped
}

package workers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/stocksense/advisor/internal/aggregator"
	"github.com/stocksense/advisor/pkg/logger"
)

// NewsRefresher keeps the aggregate news cache warm so API calls rarely pay
// the full fan-out latency. Runs slightly more often than the cache TTL.
type NewsRefresher struct {
	agg *aggregator.Aggregator
}

// NewNewsRefresher creates the refresher worker.
func NewNewsRefresher(agg *aggregator.Aggregator) *NewsRefresher {
	return &NewsRefresher{agg: agg}
}

// Name returns worker name for logging.
func (w *NewsRefresher) Name() string {
	return "news-refresher"
}

// Run drops the cached batch and fetches a fresh one.
func (w *NewsRefresher) Run(ctx context.Context) error {
	w.agg.Invalidate()

	items, err := w.agg.FetchAllNews(ctx)
	if err != nil {
		return fmt.Errorf("news refresh failed: %w", err)
	}

	logger.Debug("news cache refreshed", zap.Int("items", len(items)))
	return nil
}

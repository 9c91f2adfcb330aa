package provider

import (
	"context"

	"github.com/stocksense/advisor/pkg/models"
)

// NewsProvider fetches news for a single ticker. Implementations convert
// upstream auth/network/schema failures into an empty result at this layer;
// a returned error means the caller may want to try a fallback source, never
// that the batch should abort.
type NewsProvider interface {
	// GetName returns provider name
	GetName() string

	// FetchNews fetches up to limit news items for ticker. Items carry no
	// ticker; the aggregator stamps it.
	FetchNews(ctx context.Context, ticker string, limit int) ([]models.NewsItem, error)
}

// MarketDataProvider fetches price and fundamentals data for a ticker.
type MarketDataProvider interface {
	// FetchPriceHistory returns an ordered closing-price series covering
	// roughly periodDays.
	FetchPriceHistory(ctx context.Context, ticker string, periodDays int) (models.PriceHistory, error)

	// FetchQuote returns the provider's raw stock info document. Keys are
	// provider-specific; the enrichment layer maps them to named metrics.
	FetchQuote(ctx context.Context, ticker string) (map[string]any, error)
}

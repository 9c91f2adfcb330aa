package enrichment

import (
	"context"

	"github.com/stocksense/advisor/internal/adapters/provider"
	"github.com/stocksense/advisor/pkg/models"
)

// defaultPeriodDays covers enough trading days for the 50-day windows.
const defaultPeriodDays = 180

// Service fetches market data and turns it into enrichment snapshots. Both
// lookups are best-effort: missing upstream data reads as an absent
// snapshot, never an error the recommendation path has to handle.
type Service struct {
	market     provider.MarketDataProvider
	calc       *Calculator
	periodDays int
}

// NewService creates an enrichment service over a market-data provider.
func NewService(market provider.MarketDataProvider) *Service {
	return &Service{
		market:     market,
		calc:       NewCalculator(),
		periodDays: defaultPeriodDays,
	}
}

// Technical fetches price history and computes the technical snapshot.
// Returns nil when the series is missing or too short.
func (s *Service) Technical(ctx context.Context, ticker string) (*models.TechnicalSnapshot, error) {
	history, err := s.market.FetchPriceHistory(ctx, ticker, s.periodDays)
	if err != nil {
		return nil, err
	}
	if history.IsEmpty() {
		return nil, nil
	}

	snapshot, err := s.calc.Snapshot(history)
	if err != nil {
		// Short series: no snapshot, not a failure.
		return nil, nil
	}
	return snapshot, nil
}

// Fundamentals fetches the raw quote and extracts the sparse metric map.
func (s *Service) Fundamentals(ctx context.Context, ticker string) (models.FundamentalSnapshot, error) {
	quote, err := s.market.FetchQuote(ctx, ticker)
	if err != nil {
		return nil, err
	}
	return Fundamentals(quote), nil
}

// PriceHistory exposes the underlying closing-price series for chart
// consumers.
func (s *Service) PriceHistory(ctx context.Context, ticker string) (models.PriceHistory, error) {
	return s.market.FetchPriceHistory(ctx, ticker, s.periodDays)
}

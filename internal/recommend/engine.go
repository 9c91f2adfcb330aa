package recommend

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/stocksense/advisor/internal/sentiment"
	"github.com/stocksense/advisor/internal/universe"
	"github.com/stocksense/advisor/pkg/logger"
	"github.com/stocksense/advisor/pkg/models"
)

// Buy/Sell thresholds are intentionally asymmetric: it is easier to trigger
// Sell than Buy. Both boundaries are inclusive.
const (
	buyThreshold  = 0.10
	sellThreshold = -0.05
)

const (
	baseConfidence = 0.5
	minConfidence  = 0.3
	maxConfidence  = 1.0
)

// NewsSource supplies the normalized news batch for the whole universe.
type NewsSource interface {
	FetchAllNews(ctx context.Context) ([]models.NewsItem, error)
}

// Enricher supplies optional technical and fundamental snapshots. Both
// lookups are best-effort; a nil snapshot or an error simply omits that
// factor.
type Enricher interface {
	Technical(ctx context.Context, ticker string) (*models.TechnicalSnapshot, error)
	Fundamentals(ctx context.Context, ticker string) (models.FundamentalSnapshot, error)
}

// Engine turns aggregated news into per-ticker recommendations.
type Engine struct {
	news     NewsSource
	analyzer *sentiment.Analyzer
	enricher Enricher
	universe *universe.Universe
}

// New creates a recommendation engine. enricher may be nil, in which case
// recommendations rest on sentiment alone.
func New(news NewsSource, analyzer *sentiment.Analyzer, enricher Enricher, uni *universe.Universe) *Engine {
	return &Engine{
		news:     news,
		analyzer: analyzer,
		enricher: enricher,
		universe: uni,
	}
}

// Sentiments scores every aggregated article. The record's summary falls
// back to the title when the article carried none.
func (e *Engine) Sentiments(ctx context.Context) ([]models.SentimentRecord, error) {
	items, err := e.news.FetchAllNews(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]models.SentimentRecord, 0, len(items))
	for _, item := range items {
		score := e.analyzer.Score(strings.TrimSpace(item.Title + " " + item.Summary))

		summary := item.Summary
		if summary == "" {
			summary = item.Title
		}

		records = append(records, models.SentimentRecord{
			Ticker:       item.Ticker,
			Title:        item.Title,
			Summary:      summary,
			Polarity:     score.Polarity,
			Subjectivity: score.Subjectivity,
		})
	}
	return records, nil
}

// Recommendations computes fresh per-ticker recommendations in canonical
// universe order. Tickers with zero articles are omitted.
func (e *Engine) Recommendations(ctx context.Context) ([]models.Recommendation, error) {
	records, err := e.Sentiments(ctx)
	if err != nil {
		return nil, err
	}

	type group struct {
		total float64
		count int
	}
	byTicker := make(map[string]*group)
	for _, rec := range records {
		g, ok := byTicker[rec.Ticker]
		if !ok {
			g = &group{}
			byTicker[rec.Ticker] = g
		}
		g.total += rec.Polarity
		g.count++
	}

	out := make([]models.Recommendation, 0, len(byTicker))
	for _, ticker := range e.universe.Symbols() {
		g, ok := byTicker[ticker]
		if !ok {
			continue
		}

		avgPolarity := g.total / float64(g.count)
		tech, fund := e.enrich(ctx, ticker)

		action, confidence := blend(baseAction(avgPolarity), tech, fund)

		rec := models.Recommendation{
			Ticker:         ticker,
			AvgPolarity:    avgPolarity,
			Recommendation: action,
			Confidence:     confidence,
			Factors:        buildFactors(avgPolarity, tech, fund),
			NewsCount:      g.count,
		}
		out = append(out, rec)
	}
	return out, nil
}

// enrich fetches the optional snapshots. Each lookup fails independently;
// a failure only drops its own factor.
func (e *Engine) enrich(ctx context.Context, ticker string) (*models.TechnicalSnapshot, models.FundamentalSnapshot) {
	if e.enricher == nil {
		return nil, nil
	}

	tech, err := e.enricher.Technical(ctx, ticker)
	if err != nil {
		logger.Debug("technical enrichment unavailable",
			zap.String("ticker", ticker), zap.Error(err))
		tech = nil
	}

	fund, err := e.enricher.Fundamentals(ctx, ticker)
	if err != nil {
		logger.Debug("fundamental enrichment unavailable",
			zap.String("ticker", ticker), zap.Error(err))
		fund = nil
	}
	return tech, fund
}

// baseAction maps average polarity onto the action thresholds. Boundaries
// are inclusive: exactly 0.10 is Buy, exactly -0.05 is Sell.
func baseAction(avgPolarity float64) models.Action {
	switch {
	case avgPolarity >= buyThreshold:
		return models.ActionBuy
	case avgPolarity <= sellThreshold:
		return models.ActionSell
	default:
		return models.ActionHold
	}
}

// blend applies the confidence pipeline in one place. An oversold or
// overbought RSI adjusts confidence once as a signal and, when it also
// flips the action, adjusts it a second time with the override. The two
// adjustments accumulate; keep that arithmetic as is, downstream consumers
// calibrated against it.
func blend(action models.Action, tech *models.TechnicalSnapshot, fund models.FundamentalSnapshot) (models.Action, float64) {
	confidence := baseConfidence

	if tech != nil {
		if tech.RSI < 30 {
			confidence += 0.1
		}
		if tech.RSI > 70 {
			confidence -= 0.1
		}
	}

	if pe, ok := fund.Get("pe_ratio"); ok && pe > 0 && pe < 20 {
		confidence += 0.1
	}

	if tech != nil {
		if tech.RSI < 30 && action == models.ActionHold {
			action = models.ActionBuy
			confidence += 0.1
		}
		if tech.RSI > 70 && action == models.ActionBuy {
			action = models.ActionHold
			confidence -= 0.1
		}
	}

	if confidence < minConfidence {
		confidence = minConfidence
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	rounded, _ := decimal.NewFromFloat(confidence).Round(2).Float64()
	return action, rounded
}

// buildFactors records the contributing signals. Sentiment is always
// present; technical/fundamental appear only when the enrichment produced
// data.
func buildFactors(avgPolarity float64, tech *models.TechnicalSnapshot, fund models.FundamentalSnapshot) models.Factors {
	factors := models.Factors{Sentiment: avgPolarity}

	if tech != nil {
		factors.Technical = &models.TechnicalFactors{
			RSI:   tech.RSI,
			SMA20: tech.SMA["sma_20"],
			SMA50: tech.SMA["sma_50"],
		}
	}

	if len(fund) > 0 {
		ff := &models.FundamentalFactors{}
		if pe, ok := fund.Get("pe_ratio"); ok {
			ff.PERatio = &pe
		}
		if mc, ok := fund.Get("market_cap"); ok {
			ff.MarketCap = &mc
		}
		factors.Fundamental = ff
	}
	return factors
}

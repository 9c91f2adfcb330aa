package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stocksense/advisor/internal/universe"
	"github.com/stocksense/advisor/pkg/models"
)

// RecommendationSource produces the per-ticker recommendation batch.
type RecommendationSource interface {
	Recommendations(ctx context.Context) ([]models.Recommendation, error)
}

// Report is one generated daily report.
type Report struct {
	Date      time.Time
	CSV       []byte
	Rows      int
	BuyCount  int
	HoldCount int
	SellCount int
}

// Generator renders the recommendation batch as a daily CSV report.
type Generator struct {
	source RecommendationSource
}

// NewGenerator creates a report generator.
func NewGenerator(source RecommendationSource) *Generator {
	return &Generator{source: source}
}

// Generate computes fresh recommendations and renders them to CSV. An empty
// batch is an error: an empty report mail helps nobody.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	recs, err := g.source.Recommendations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute recommendations: %w", err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("no recommendations available for report")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"ticker", "avg_polarity", "recommendation", "confidence", "news_count", "sector"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	report := &Report{Date: time.Now()}
	for _, rec := range recs {
		row := []string{
			rec.Ticker,
			decimal.NewFromFloat(rec.AvgPolarity).Round(3).String(),
			string(rec.Recommendation),
			decimal.NewFromFloat(rec.Confidence).Round(2).String(),
			strconv.Itoa(rec.NewsCount),
			universe.Sector(rec.Ticker),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}

		switch rec.Recommendation {
		case models.ActionBuy:
			report.BuyCount++
		case models.ActionSell:
			report.SellCount++
		default:
			report.HoldCount++
		}
		report.Rows++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	report.CSV = buf.Bytes()
	return report, nil
}

// WriteFile stores the rendered CSV on disk.
func (r *Report) WriteFile(path string) error {
	if err := os.WriteFile(path, r.CSV, 0o644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}

// Filename is the attachment name carrying the report date.
func (r *Report) Filename() string {
	return fmt.Sprintf("recommendations_%s.csv", r.Date.Format("2006-01-02"))
}

// Summary renders the short human-readable digest used for mail bodies and
// chat notifications.
func (r *Report) Summary() string {
	return fmt.Sprintf(
		"Daily stock recommendations for %s\n\nTickers covered: %d\nBuy: %d\nHold: %d\nSell: %d\n\nFull details in the attached CSV.",
		r.Date.Format("2006-01-02"), r.Rows, r.BuyCount, r.HoldCount, r.SellCount,
	)
}

package recommend

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/stocksense/advisor/internal/sentiment"
	"github.com/stocksense/advisor/internal/universe"
	"github.com/stocksense/advisor/pkg/logger"
	"github.com/stocksense/advisor/pkg/models"
)

func TestMain(m *testing.M) {
	logger.Init("error", "")
	os.Exit(m.Run())
}

type staticNews struct {
	items []models.NewsItem
}

func (s *staticNews) FetchAllNews(ctx context.Context) ([]models.NewsItem, error) {
	return s.items, nil
}

type staticEnricher struct {
	tech map[string]*models.TechnicalSnapshot
	fund map[string]models.FundamentalSnapshot
}

func (s *staticEnricher) Technical(ctx context.Context, ticker string) (*models.TechnicalSnapshot, error) {
	return s.tech[ticker], nil
}

func (s *staticEnricher) Fundamentals(ctx context.Context, ticker string) (models.FundamentalSnapshot, error) {
	return s.fund[ticker], nil
}

func testUniverse(t *testing.T, symbols ...string) *universe.Universe {
	t.Helper()
	u, err := universe.New(symbols)
	if err != nil {
		t.Fatalf("universe.New: %v", err)
	}
	return u
}

func TestBaseAction_Thresholds(t *testing.T) {
	tests := []struct {
		polarity float64
		want     models.Action
	}{
		{0.10, models.ActionBuy}, // boundary is inclusive
		{0.15, models.ActionBuy},
		{0.0999, models.ActionHold},
		{0.0, models.ActionHold},
		{-0.0499, models.ActionHold},
		{-0.05, models.ActionSell}, // boundary is inclusive
		{-0.5, models.ActionSell},
	}
	for _, tt := range tests {
		if got := baseAction(tt.polarity); got != tt.want {
			t.Errorf("baseAction(%v) = %v, want %v", tt.polarity, got, tt.want)
		}
	}
}

func TestBlend_OversoldBumpOnExistingBuy(t *testing.T) {
	tech := &models.TechnicalSnapshot{RSI: 25}

	action, conf := blend(models.ActionBuy, tech, nil)

	if action != models.ActionBuy {
		t.Errorf("action = %v, want Buy", action)
	}
	if conf != 0.60 {
		t.Errorf("confidence = %v, want 0.60", conf)
	}
}

func TestBlend_OversoldOverrideDoubleCounts(t *testing.T) {
	// RSI 20 on a Hold: the oversold signal bumps once and the override to
	// Buy bumps again.
	tech := &models.TechnicalSnapshot{RSI: 20}

	action, conf := blend(models.ActionHold, tech, nil)

	if action != models.ActionBuy {
		t.Errorf("action = %v, want Buy", action)
	}
	if conf != 0.70 {
		t.Errorf("confidence = %v, want 0.70", conf)
	}
}

func TestBlend_OverboughtDowngradeDoubleCounts(t *testing.T) {
	tech := &models.TechnicalSnapshot{RSI: 80}

	action, conf := blend(models.ActionBuy, tech, nil)

	if action != models.ActionHold {
		t.Errorf("action = %v, want Hold", action)
	}
	if conf != 0.30 {
		t.Errorf("confidence = %v, want floor 0.30", conf)
	}
}

func TestBlend_FundamentalPEWindow(t *testing.T) {
	tests := []struct {
		name string
		pe   float64
		want float64
	}{
		{"cheap pe bumps", 15, 0.60},
		{"pe at 20 does not", 20, 0.50},
		{"negative pe does not", -5, 0.50},
		{"pe at zero does not", 0, 0.50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fund := models.FundamentalSnapshot{"pe_ratio": tt.pe}
			_, conf := blend(models.ActionHold, nil, fund)
			if conf != tt.want {
				t.Errorf("confidence = %v, want %v", conf, tt.want)
			}
		})
	}
}

func TestBlend_ConfidenceAlwaysInRange(t *testing.T) {
	rsis := []float64{0, 20, 30, 50, 70, 80, 100}
	pes := []float64{-10, 0, 10, 20, 50}
	actions := []models.Action{models.ActionBuy, models.ActionHold, models.ActionSell}

	for _, rsi := range rsis {
		for _, pe := range pes {
			for _, action := range actions {
				tech := &models.TechnicalSnapshot{RSI: rsi}
				fund := models.FundamentalSnapshot{"pe_ratio": pe}
				_, conf := blend(action, tech, fund)
				if conf < 0.3 || conf > 1.0 {
					t.Errorf("confidence %v out of range for rsi=%v pe=%v action=%v",
						conf, rsi, pe, action)
				}
			}
		}
	}
}

func TestBlend_NoEnrichmentIsBaseline(t *testing.T) {
	action, conf := blend(models.ActionSell, nil, nil)
	if action != models.ActionSell || conf != 0.50 {
		t.Errorf("got (%v, %v), want (Sell, 0.50)", action, conf)
	}
}

func TestSentiments_SummaryFallsBackToTitle(t *testing.T) {
	uni := testUniverse(t, "AAA.NS")
	news := &staticNews{items: []models.NewsItem{
		{Ticker: "AAA.NS", Title: "Company posts record profit"},
	}}

	e := New(news, sentiment.NewAnalyzer(), nil, uni)
	records, err := e.Sentiments(context.Background())
	if err != nil {
		t.Fatalf("Sentiments: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Summary != "Company posts record profit" {
		t.Errorf("summary should fall back to title, got %q", records[0].Summary)
	}
	if records[0].Polarity <= 0 {
		t.Errorf("record profit headline should be positive, got %v", records[0].Polarity)
	}
}

func TestRecommendations_CanonicalOrderAndOmission(t *testing.T) {
	uni := testUniverse(t, "AAA.NS", "BBB.NS", "CCC.NS")
	news := &staticNews{items: []models.NewsItem{
		// Discovery order deliberately reversed relative to the universe.
		{Ticker: "CCC.NS", Title: "Shares plunge after fraud probe"},
		{Ticker: "AAA.NS", Title: "Earnings beat estimates, strong growth"},
		// BBB.NS has no news and must be omitted.
	}}

	e := New(news, sentiment.NewAnalyzer(), nil, uni)
	recs, err := e.Recommendations(context.Background())
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}

	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].Ticker != "AAA.NS" || recs[1].Ticker != "CCC.NS" {
		t.Errorf("output must follow universe order, got %v then %v",
			recs[0].Ticker, recs[1].Ticker)
	}
	if recs[0].NewsCount != 1 || recs[1].NewsCount != 1 {
		t.Errorf("news counts wrong: %+v", recs)
	}
	for _, rec := range recs {
		if rec.Confidence < 0.3 || rec.Confidence > 1.0 {
			t.Errorf("confidence out of range: %+v", rec)
		}
	}
}

func TestRecommendations_FactorsReflectEnrichment(t *testing.T) {
	uni := testUniverse(t, "AAA.NS", "BBB.NS")
	news := &staticNews{items: []models.NewsItem{
		{Ticker: "AAA.NS", Title: "Quarter was fine"},
		{Ticker: "BBB.NS", Title: "Quarter was fine"},
	}}

	sma20 := 101.5
	enricher := &staticEnricher{
		tech: map[string]*models.TechnicalSnapshot{
			"AAA.NS": {RSI: 45, SMA: map[string]*float64{"sma_20": &sma20}},
		},
		fund: map[string]models.FundamentalSnapshot{
			"AAA.NS": {"pe_ratio": 18.0, "market_cap": 2e12},
		},
	}

	e := New(news, sentiment.NewAnalyzer(), enricher, uni)
	recs, err := e.Recommendations(context.Background())
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}

	enriched := recs[0]
	if enriched.Factors.Technical == nil || enriched.Factors.Technical.RSI != 45 {
		t.Errorf("technical factors missing: %+v", enriched.Factors)
	}
	if enriched.Factors.Technical.SMA20 == nil || *enriched.Factors.Technical.SMA20 != 101.5 {
		t.Errorf("sma_20 not carried into factors: %+v", enriched.Factors.Technical)
	}
	if enriched.Factors.Fundamental == nil || enriched.Factors.Fundamental.PERatio == nil {
		t.Errorf("fundamental factors missing: %+v", enriched.Factors)
	}
	if *enriched.Factors.Fundamental.PERatio != 18.0 {
		t.Errorf("pe_ratio = %v, want 18.0", *enriched.Factors.Fundamental.PERatio)
	}

	bare := recs[1]
	if bare.Factors.Technical != nil || bare.Factors.Fundamental != nil {
		t.Errorf("unenriched ticker must carry sentiment factor only: %+v", bare.Factors)
	}
	if math.Abs(bare.Factors.Sentiment-bare.AvgPolarity) > 1e-12 {
		t.Errorf("sentiment factor must equal avg polarity")
	}
}

func TestRecommendations_AveragePolarity(t *testing.T) {
	uni := testUniverse(t, "AAA.NS")
	news := &staticNews{items: []models.NewsItem{
		{Ticker: "AAA.NS", Title: "Earnings beat estimates"},
		{Ticker: "AAA.NS", Title: "Weather unchanged today"},
	}}

	e := New(news, sentiment.NewAnalyzer(), nil, uni)
	records, err := e.Sentiments(context.Background())
	if err != nil {
		t.Fatalf("Sentiments: %v", err)
	}
	recs, err := e.Recommendations(context.Background())
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}

	want := (records[0].Polarity + records[1].Polarity) / 2
	if math.Abs(recs[0].AvgPolarity-want) > 1e-12 {
		t.Errorf("avg polarity = %v, want %v", recs[0].AvgPolarity, want)
	}
}

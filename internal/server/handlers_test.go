package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stocksense/advisor/internal/enrichment"
	"github.com/stocksense/advisor/internal/recommend"
	"github.com/stocksense/advisor/internal/sentiment"
	"github.com/stocksense/advisor/internal/universe"
	"github.com/stocksense/advisor/pkg/logger"
	"github.com/stocksense/advisor/pkg/models"
)

func TestMain(m *testing.M) {
	logger.Init("error", "")
	os.Exit(m.Run())
}

type fakeNews struct {
	items []models.NewsItem
}

func (f *fakeNews) FetchAllNews(ctx context.Context) ([]models.NewsItem, error) {
	return f.items, nil
}

type fakeMarket struct {
	history models.PriceHistory
	quote   map[string]any
}

func (f *fakeMarket) FetchPriceHistory(ctx context.Context, ticker string, periodDays int) (models.PriceHistory, error) {
	return f.history, nil
}

func (f *fakeMarket) FetchQuote(ctx context.Context, ticker string) (map[string]any, error) {
	return f.quote, nil
}

type fakeReport struct {
	err   error
	calls int
}

func (f *fakeReport) Run(ctx context.Context) error {
	f.calls++
	return f.err
}

func newTestHandler(t *testing.T, news NewsSource, market *fakeMarket, report ReportRunner) *Handler {
	t.Helper()
	uni, err := universe.New([]string{"RELIANCE.NS", "TCS.NS"})
	if err != nil {
		t.Fatalf("universe.New: %v", err)
	}
	svc := enrichment.NewService(market)
	engine := recommend.New(news, sentiment.NewAnalyzer(), svc, uni)
	return NewHandler(news, engine, svc, uni, report)
}

func doRequest(h *Handler, method, target string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	srv := &Server{echo: e, handler: h}
	srv.registerRoutes()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, &fakeNews{}, &fakeMarket{}, nil)
	rec := doRequest(h, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestNews_EmptyIs404(t *testing.T) {
	h := newTestHandler(t, &fakeNews{}, &fakeMarket{}, nil)
	rec := doRequest(h, http.MethodGet, "/news")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRecommendations_OK(t *testing.T) {
	news := &fakeNews{items: []models.NewsItem{
		{Ticker: "RELIANCE.NS", Title: "Earnings beat estimates with strong growth"},
	}}
	h := newTestHandler(t, news, &fakeMarket{}, nil)

	rec := doRequest(h, http.MethodGet, "/recommendations")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Count           int                     `json:"count"`
		Recommendations []models.Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if payload.Count != 1 || payload.Recommendations[0].Ticker != "RELIANCE.NS" {
		t.Errorf("unexpected payload: %+v", payload)
	}
	if payload.Recommendations[0].Recommendation != models.ActionBuy {
		t.Errorf("positive headline should yield Buy, got %v", payload.Recommendations[0].Recommendation)
	}
}

func TestTicker_Validation(t *testing.T) {
	h := newTestHandler(t, &fakeNews{}, &fakeMarket{}, nil)

	for _, target := range []string{
		"/price_chart",
		"/price_chart?ticker=UNKNOWN.NS",
		"/technical/UNKNOWN.NS",
		"/fundamental/UNKNOWN.NS",
		"/compare?tickers=RELIANCE.NS,UNKNOWN.NS",
	} {
		rec := doRequest(h, http.MethodGet, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestTechnical_ShortHistoryIs404(t *testing.T) {
	market := &fakeMarket{history: models.PriceHistory{
		Dates:  []string{"2024-01-01"},
		Closes: []float64{100},
	}}
	h := newTestHandler(t, &fakeNews{}, market, nil)

	rec := doRequest(h, http.MethodGet, "/technical/RELIANCE.NS")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestTechnical_OK(t *testing.T) {
	closes := make([]float64, 60)
	dates := make([]string, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
		dates[i] = fmt.Sprintf("2024-01-%02d", i%28+1)
	}
	market := &fakeMarket{history: models.PriceHistory{Dates: dates, Closes: closes}}
	h := newTestHandler(t, &fakeNews{}, market, nil)

	rec := doRequest(h, http.MethodGet, "/technical/RELIANCE.NS")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"rsi"`) {
		t.Errorf("body missing rsi: %s", rec.Body.String())
	}
}

func TestFundamental_OK(t *testing.T) {
	market := &fakeMarket{quote: map[string]any{"trailingPE": 18.5, "marketCap": 2e12}}
	h := newTestHandler(t, &fakeNews{}, market, nil)

	rec := doRequest(h, http.MethodGet, "/fundamental/TCS.NS")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "pe_ratio") {
		t.Errorf("body missing pe_ratio: %s", rec.Body.String())
	}
}

func TestCompare_FiltersToRequested(t *testing.T) {
	news := &fakeNews{items: []models.NewsItem{
		{Ticker: "RELIANCE.NS", Title: "Record profit surge"},
		{Ticker: "TCS.NS", Title: "Shares plunge on fraud probe"},
	}}
	h := newTestHandler(t, news, &fakeMarket{}, nil)

	rec := doRequest(h, http.MethodGet, "/compare?tickers=TCS.NS")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Count      int                     `json:"count"`
		Comparison []models.Recommendation `json:"comparison"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if payload.Count != 1 || payload.Comparison[0].Ticker != "TCS.NS" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestRunDailyReport(t *testing.T) {
	report := &fakeReport{}
	h := newTestHandler(t, &fakeNews{}, &fakeMarket{}, report)

	rec := doRequest(h, http.MethodPost, "/run-daily-report")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if report.calls != 1 {
		t.Errorf("report should run once, ran %d times", report.calls)
	}

	report.err = fmt.Errorf("smtp down")
	rec = doRequest(h, http.MethodPost, "/run-daily-report")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	h = newTestHandler(t, &fakeNews{}, &fakeMarket{}, nil)
	rec = doRequest(h, http.MethodPost, "/run-daily-report")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/stocksense/advisor/internal/enrichment"
	"github.com/stocksense/advisor/internal/recommend"
	"github.com/stocksense/advisor/internal/universe"
	"github.com/stocksense/advisor/pkg/logger"
	"github.com/stocksense/advisor/pkg/models"
)

// NewsSource supplies the aggregated news batch.
type NewsSource interface {
	FetchAllNews(ctx context.Context) ([]models.NewsItem, error)
}

// ReportRunner runs the daily report once.
type ReportRunner interface {
	Run(ctx context.Context) error
}

// Handler holds the facade's collaborators. The facade is thin: every
// endpoint maps a core result onto a status code and returns it as JSON.
type Handler struct {
	news     NewsSource
	engine   *recommend.Engine
	enrich   *enrichment.Service
	universe *universe.Universe
	report   ReportRunner
}

// NewHandler creates the route handler set. report may be nil when report
// running is not wired into this process.
func NewHandler(news NewsSource, engine *recommend.Engine, enrich *enrichment.Service, uni *universe.Universe, report ReportRunner) *Handler {
	return &Handler{
		news:     news,
		engine:   engine,
		enrich:   enrich,
		universe: uni,
		report:   report,
	}
}

// Root describes the service.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service": "stock advisor",
		"tickers": h.universe.Len(),
		"endpoints": []string{
			"/news", "/sentiment", "/recommendations",
			"/price_chart?ticker=", "/technical/:ticker", "/fundamental/:ticker",
			"/compare?tickers=", "/run-daily-report", "/health",
		},
	})
}

// Health is the liveness probe.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// News returns the aggregated news batch for the whole universe.
func (h *Handler) News(c echo.Context) error {
	items, err := h.news.FetchAllNews(c.Request().Context())
	if err != nil {
		logger.Error("news fetch failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch news")
	}
	if len(items) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no news available")
	}
	return c.JSON(http.StatusOK, map[string]any{"count": len(items), "news": items})
}

// Sentiment returns per-article sentiment records.
func (h *Handler) Sentiment(c echo.Context) error {
	records, err := h.engine.Sentiments(c.Request().Context())
	if err != nil {
		logger.Error("sentiment computation failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compute sentiment")
	}
	if len(records) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no sentiment data available")
	}
	return c.JSON(http.StatusOK, map[string]any{"count": len(records), "sentiment": records})
}

// Recommendations returns the per-ticker recommendation batch.
func (h *Handler) Recommendations(c echo.Context) error {
	recs, err := h.engine.Recommendations(c.Request().Context())
	if err != nil {
		logger.Error("recommendation computation failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compute recommendations")
	}
	if len(recs) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no recommendations available")
	}
	return c.JSON(http.StatusOK, map[string]any{"count": len(recs), "recommendations": recs})
}

// PriceChart returns the closing-price series for one ticker.
func (h *Handler) PriceChart(c echo.Context) error {
	ticker, httpErr := h.requireTicker(c.QueryParam("ticker"))
	if httpErr != nil {
		return httpErr
	}

	history, err := h.enrich.PriceHistory(c.Request().Context(), ticker)
	if err != nil {
		logger.Error("price history fetch failed", zap.String("ticker", ticker), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch price history")
	}
	if history.IsEmpty() {
		return echo.NewHTTPError(http.StatusNotFound, "no price history for "+ticker)
	}
	return c.JSON(http.StatusOK, map[string]any{"ticker": ticker, "history": history})
}

// Technical returns the technical snapshot for one ticker.
func (h *Handler) Technical(c echo.Context) error {
	ticker, httpErr := h.requireTicker(c.Param("ticker"))
	if httpErr != nil {
		return httpErr
	}

	snapshot, err := h.enrich.Technical(c.Request().Context(), ticker)
	if err != nil {
		logger.Error("technical enrichment failed", zap.String("ticker", ticker), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compute indicators")
	}
	if snapshot == nil {
		return echo.NewHTTPError(http.StatusNotFound, "insufficient price history for "+ticker)
	}
	return c.JSON(http.StatusOK, map[string]any{"ticker": ticker, "technical": snapshot})
}

// Fundamental returns the sparse fundamental snapshot for one ticker.
func (h *Handler) Fundamental(c echo.Context) error {
	ticker, httpErr := h.requireTicker(c.Param("ticker"))
	if httpErr != nil {
		return httpErr
	}

	snapshot, err := h.enrich.Fundamentals(c.Request().Context(), ticker)
	if err != nil {
		logger.Error("fundamental enrichment failed", zap.String("ticker", ticker), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch fundamentals")
	}
	if len(snapshot) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no fundamentals for "+ticker)
	}
	return c.JSON(http.StatusOK, map[string]any{"ticker": ticker, "fundamental": snapshot})
}

// Compare returns recommendations restricted to a requested ticker set.
func (h *Handler) Compare(c echo.Context) error {
	raw := c.QueryParam("tickers")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tickers query parameter is required")
	}

	requested := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		ticker, httpErr := h.requireTicker(strings.TrimSpace(part))
		if httpErr != nil {
			return httpErr
		}
		requested[ticker] = true
	}

	recs, err := h.engine.Recommendations(c.Request().Context())
	if err != nil {
		logger.Error("recommendation computation failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compute recommendations")
	}

	selected := make([]models.Recommendation, 0, len(requested))
	for _, rec := range recs {
		if requested[rec.Ticker] {
			selected = append(selected, rec)
		}
	}
	if len(selected) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no data for requested tickers")
	}
	return c.JSON(http.StatusOK, map[string]any{"count": len(selected), "comparison": selected})
}

// RunDailyReport triggers one report run synchronously.
func (h *Handler) RunDailyReport(c echo.Context) error {
	if h.report == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "report runner not configured")
	}

	if err := h.report.Run(c.Request().Context()); err != nil {
		logger.Error("report run failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "report run failed")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// requireTicker validates a ticker against the configured universe. Unknown
// or missing tickers are a client error.
func (h *Handler) requireTicker(raw string) (string, *echo.HTTPError) {
	ticker := strings.ToUpper(strings.TrimSpace(raw))
	if ticker == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "ticker is required")
	}
	if !h.universe.Contains(ticker) {
		return "", echo.NewHTTPError(http.StatusBadRequest, "unsupported ticker: "+ticker)
	}
	return ticker, nil
}

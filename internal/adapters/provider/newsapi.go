package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/stocksense/advisor/internal/adapters/config"
	"github.com/stocksense/advisor/internal/universe"
	"github.com/stocksense/advisor/pkg/logger"
	"github.com/stocksense/advisor/pkg/models"
)

// SearchClient is an Event Registry style article-search provider, used as
// a per-ticker fallback when the primary provider has nothing. Calls are
// kept minimal because search API tokens are limited.
type SearchClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewSearchClient creates the search provider. Returns nil when no API key
// is configured; the caller treats a nil client as "no fallback".
func NewSearchClient(cfg config.NewsSearchConfig) *SearchClient {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &SearchClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *SearchClient) GetName() string {
	return "newsapi"
}

// FetchNews searches recent articles mentioning the ticker symbol.
func (s *SearchClient) FetchNews(ctx context.Context, ticker string, limit int) ([]models.NewsItem, error) {
	query := universe.CleanSymbol(ticker)
	if query == "" {
		return nil, nil
	}
	if limit > 20 {
		limit = 20
	}

	payload := map[string]any{
		"action":                 "getArticles",
		"keyword":                query,
		"keywordLoc":             "title,body",
		"articlesPage":           1,
		"articlesCount":          limit,
		"articlesSortBy":         "date",
		"articlesSortByAsc":      false,
		"dataType":               []string{"news"},
		"resultType":             "articles",
		"forceMaxDataTimeWindow": 7,
		"apiKey":                 s.apiKey,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode search payload: %w", err)
	}

	endpoint := s.baseURL + "/article/getArticles"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Warn("news search request failed",
			zap.String("ticker", ticker),
			zap.Error(err),
		)
		return nil, nil
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK {
		logger.Warn("news search returned no usable data",
			zap.String("ticker", ticker),
			zap.Int("status", resp.StatusCode),
		)
		return nil, nil
	}

	return parseSearchArticles(raw), nil
}

// parseSearchArticles unwraps the {"articles": {"results": [...]}} envelope
// and falls back to the generic container tables.
func parseSearchArticles(raw []byte) []models.NewsItem {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		// Top-level list or malformed document: the generic parser decides.
		return ParseNews(raw)
	}

	if env, ok := doc["articles"].(map[string]any); ok {
		if results, ok := env["results"].([]any); ok && len(results) > 0 {
			inner, err := json.Marshal(map[string]any{"results": results})
			if err == nil {
				return ParseNews(inner)
			}
		}
	}

	return ParseNews(raw)
}

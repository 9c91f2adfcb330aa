package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/stocksense/advisor/internal/adapters/config"
	"github.com/stocksense/advisor/internal/universe"
	"github.com/stocksense/advisor/pkg/logger"
	"github.com/stocksense/advisor/pkg/models"
)

// Client talks to a stock.indianapi.in style market API. The configured
// auth header strategy is attempted first; on failure each call retries once
// with the api_key query parameter, because upstream providers vary in which
// scheme they accept. A non-200 after the retry is logged and degraded to an
// empty result, never surfaced as an error.
type Client struct {
	baseURL    string
	apiKey     string
	authHeader string
	client     *http.Client
}

// NewClient creates the API client. A missing API key is the one hard
// configuration error: without a news source the whole pipeline is
// meaningless.
func NewClient(cfg config.ProviderConfig) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("stock API key is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("stock API base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     apiKey,
		authHeader: cfg.AuthHeader,
		client:     &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) GetName() string {
	return "indianapi"
}

// FetchNews fetches news for a ticker. Returned items carry no ticker; the
// aggregator stamps it.
func (c *Client) FetchNews(ctx context.Context, ticker string, limit int) ([]models.NewsItem, error) {
	params := url.Values{}
	params.Set("stock_name", universe.CleanSymbol(ticker))
	params.Set("limit", fmt.Sprintf("%d", limit))

	raw, ok := c.getJSON(ctx, "/news", params)
	if !ok {
		return nil, nil
	}
	return ParseNews(raw), nil
}

// FetchPriceHistory fetches the closing-price series covering roughly
// periodDays, mapped onto the provider's coarse period buckets.
func (c *Client) FetchPriceHistory(ctx context.Context, ticker string, periodDays int) (models.PriceHistory, error) {
	params := url.Values{}
	params.Set("stock_name", universe.CleanSymbol(ticker))
	params.Set("period", periodString(periodDays))
	params.Set("filter", "default")

	raw, ok := c.getJSON(ctx, "/historical_data", params)
	if !ok {
		return models.PriceHistory{Dates: []string{}, Closes: []float64{}}, nil
	}
	return ParsePriceHistory(raw), nil
}

// FetchQuote fetches the raw stock info document used for current price and
// fundamentals.
func (c *Client) FetchQuote(ctx context.Context, ticker string) (map[string]any, error) {
	params := url.Values{}
	params.Set("name", universe.CleanSymbol(ticker))

	raw, ok := c.getJSON(ctx, "/stock", params)
	if !ok {
		return map[string]any{}, nil
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Warn("quote payload is not a JSON object",
			zap.String("ticker", ticker),
			zap.Error(err),
		)
		return map[string]any{}, nil
	}
	return doc, nil
}

// periodString maps a day count onto the provider's period buckets.
func periodString(periodDays int) string {
	switch {
	case periodDays <= 30:
		return "1m"
	case periodDays <= 90:
		return "3m"
	case periodDays <= 180:
		return "6m"
	default:
		return "1y"
	}
}

// getJSON performs a GET with header auth, retrying once with query-param
// auth. The bool result is false when both attempts failed; failures are
// logged here and never escalate.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values) ([]byte, bool) {
	body, status, err := c.do(ctx, path, params, true)
	if err == nil && status == http.StatusOK {
		return body, true
	}

	// Retry with api_key in the query string in case the provider ignores
	// the configured header scheme.
	retryParams := url.Values{}
	for k, vs := range params {
		retryParams[k] = vs
	}
	retryParams.Set("api_key", c.apiKey)

	retryBody, retryStatus, retryErr := c.do(ctx, path, retryParams, false)
	if retryErr == nil && retryStatus == http.StatusOK {
		return retryBody, true
	}

	logger.Warn("provider request failed on both auth schemes",
		zap.String("path", path),
		zap.Int("header_status", status),
		zap.Int("query_status", retryStatus),
		zap.NamedError("header_err", err),
		zap.NamedError("query_err", retryErr),
	)
	return nil, false
}

func (c *Client) do(ctx context.Context, path string, params url.Values, headerAuth bool) ([]byte, int, error) {
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if headerAuth {
		c.setAuthHeader(req)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return body, resp.StatusCode, nil
}

// setAuthHeader applies the configured auth strategy: Authorization carries
// a bearer token, anything else carries the key directly.
func (c *Client) setAuthHeader(req *http.Request) {
	switch strings.ToLower(c.authHeader) {
	case "authorization":
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	case "x-api-key", "":
		req.Header.Set("X-Api-Key", c.apiKey)
	default:
		req.Header.Set(c.authHeader, c.apiKey)
	}
}

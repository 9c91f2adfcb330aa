package enrichment

import (
	"strconv"
	"strings"

	"github.com/stocksense/advisor/pkg/models"
)

// fundamentalFields maps each canonical metric to the quote-document keys
// that may carry it, in priority order. Providers disagree on naming; the
// first key holding a usable number wins.
var fundamentalFields = map[string][]string{
	"pe_ratio":          {"trailingPE", "pe", "peRatio", "pegRatio"},
	"forward_pe":        {"forwardPE"},
	"market_cap":        {"marketCap", "mcap"},
	"revenue_growth":    {"revenueGrowth"},
	"earnings_growth":   {"earningsGrowth"},
	"profit_margins":    {"profitMargins"},
	"operating_margins": {"operatingMargins"},
	"dividend_yield":    {"dividendYield"},
	"target_price":      {"targetMeanPrice", "targetPrice"},
}

// Fundamentals extracts the sparse fundamental snapshot from a raw quote
// document. Metrics the document does not carry are simply absent; a nil or
// non-numeric value never produces a zero entry.
func Fundamentals(quote map[string]any) models.FundamentalSnapshot {
	snapshot := make(models.FundamentalSnapshot)
	if len(quote) == 0 {
		return snapshot
	}

	for metric, keys := range fundamentalFields {
		for _, key := range keys {
			if v, ok := numericField(quote, key); ok {
				snapshot[metric] = v
				break
			}
		}
	}
	return snapshot
}

// numericField reads a number from the document, accepting numeric strings
// because some providers quote everything.
func numericField(doc map[string]any, key string) (float64, bool) {
	v, ok := doc[key]
	if !ok || v == nil {
		return 0, false
	}

	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

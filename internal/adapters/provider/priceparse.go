package provider

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/stocksense/advisor/pkg/models"
)

// priceContainerKeys are tried in priority order. The historical_data
// endpoint wraps the series as {"datasets": [{"values": [[date, close], ...]}]}.
var priceContainerKeys = []string{"data", "prices", "history", "candles", "datasets"}

var (
	dateFields  = []string{"date", "timestamp", "time", "datetime"}
	closeFields = []string{"close", "closePrice", "c", "price"}
)

// ParsePriceHistory normalizes a raw price payload into parallel date/close
// series. A point whose close fails numeric conversion is skipped on its
// own; the rest of the series survives. The nested dataset shape takes
// priority over flat object lists.
func ParsePriceHistory(raw []byte) models.PriceHistory {
	empty := models.PriceHistory{Dates: []string{}, Closes: []float64{}}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return empty
	}

	items := selectContainer(doc, priceContainerKeys)
	if len(items) == 0 {
		return empty
	}

	// Dataset shape: a single object carrying ordered [date, close] pairs.
	if first, ok := items[0].(map[string]any); ok {
		if values, ok := first["values"].([]any); ok {
			return parseDatasetValues(values)
		}
	}

	history := empty
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}

		date := firstScalarString(m, dateFields)
		closePrice, okClose := firstFloat(m, closeFields)
		if date == "" || !okClose {
			continue
		}

		history.Dates = append(history.Dates, date)
		history.Closes = append(history.Closes, closePrice)
	}
	return history
}

func parseDatasetValues(values []any) models.PriceHistory {
	history := models.PriceHistory{Dates: []string{}, Closes: []float64{}}

	for _, v := range values {
		pair, ok := v.([]any)
		if !ok || len(pair) < 2 {
			continue
		}

		date := scalarString(pair[0])
		closePrice, okClose := asFloat(pair[1])
		if date == "" || !okClose {
			continue
		}

		history.Dates = append(history.Dates, date)
		history.Closes = append(history.Closes, closePrice)
	}
	return history
}

func firstScalarString(m map[string]any, keys []string) string {
	for _, k := range keys {
		if s := scalarString(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func firstFloat(m map[string]any, keys []string) (float64, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return asFloat(v)
		}
	}
	return 0, false
}

// scalarString renders a date-like scalar as a string; epoch numbers keep
// their integer form.
func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return ""
	}
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

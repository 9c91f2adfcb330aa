package provider

import (
	"encoding/json"

	"github.com/stocksense/advisor/pkg/models"
)

// The upstream JSON schema is not contractually fixed, so parsing works off
// ordered candidate tables: the first matching container key wins, and each
// logical field accepts several synonymous names. Missing fields degrade to
// empty strings, never to an error.

// newsContainerKeys are tried in priority order; a top-level array is
// accepted as-is.
var newsContainerKeys = []string{"data", "articles", "news", "results"}

var (
	titleFields     = []string{"title", "headline"}
	summaryFields   = []string{"summary", "description", "content"}
	publisherFields = []string{"source", "publisher", "author"}
	linkFields      = []string{"url", "link", "webUrl"}
)

// ParseNews normalizes a raw news payload into NewsItems. Parsing is a pure
// function of the payload: the same bytes always yield the same items.
func ParseNews(raw []byte) []models.NewsItem {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}

	items := selectContainer(doc, newsContainerKeys)

	out := make([]models.NewsItem, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, models.NewsItem{
			Title:     firstString(m, titleFields),
			Summary:   firstString(m, summaryFields),
			Publisher: publisherOf(m),
			Link:      firstString(m, linkFields),
		})
	}
	return out
}

// selectContainer picks the article/point list out of a response document:
// a top-level list is used directly, otherwise the first candidate key
// holding a non-empty list wins.
func selectContainer(doc any, keys []string) []any {
	switch v := doc.(type) {
	case []any:
		return v
	case map[string]any:
		for _, key := range keys {
			if arr, ok := v[key].([]any); ok && len(arr) > 0 {
				return arr
			}
		}
	}
	return nil
}

// firstString returns the first non-empty string among the candidate keys.
func firstString(m map[string]any, keys []string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// publisherOf handles the two publisher shapes: a nested source object with
// a name, or a flat source/publisher/author string.
func publisherOf(m map[string]any) string {
	if src, ok := m["source"].(map[string]any); ok {
		if name, ok := src["name"].(string); ok {
			return name
		}
		return ""
	}
	return firstString(m, publisherFields)
}

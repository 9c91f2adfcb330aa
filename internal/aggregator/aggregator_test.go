package aggregator

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stocksense/advisor/internal/cache"
	"github.com/stocksense/advisor/internal/universe"
	"github.com/stocksense/advisor/pkg/logger"
	"github.com/stocksense/advisor/pkg/models"
)

func TestMain(m *testing.M) {
	logger.Init("error", "")
	os.Exit(m.Run())
}

// fakeProvider serves canned items per ticker and counts calls.
type fakeProvider struct {
	name  string
	mu    sync.Mutex
	items map[string][]models.NewsItem
	delay map[string]time.Duration
	calls int32
}

func (f *fakeProvider) GetName() string { return f.name }

func (f *fakeProvider) FetchNews(ctx context.Context, ticker string, limit int) ([]models.NewsItem, error) {
	atomic.AddInt32(&f.calls, 1)

	f.mu.Lock()
	d := f.delay[ticker]
	items := f.items[ticker]
	f.mu.Unlock()

	if d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return items, nil
}

func testUniverse(t *testing.T, symbols ...string) *universe.Universe {
	t.Helper()
	u, err := universe.New(symbols)
	if err != nil {
		t.Fatalf("universe.New: %v", err)
	}
	return u
}

func TestFetchAllNews_CanonicalOrderAndStamping(t *testing.T) {
	uni := testUniverse(t, "AAA.NS", "BBB.NS", "CCC.NS")
	prov := &fakeProvider{
		name: "fake",
		items: map[string][]models.NewsItem{
			"CCC.NS": {{Title: "c1"}},
			"AAA.NS": {{Title: "a1"}, {Title: "a2"}},
			// BBB.NS has no news and must contribute nothing.
		},
	}

	agg := New(prov, nil, uni, nil, Options{})
	items, err := agg.FetchAllNews(context.Background())
	if err != nil {
		t.Fatalf("FetchAllNews: %v", err)
	}

	want := []struct{ ticker, title string }{
		{"AAA.NS", "a1"},
		{"AAA.NS", "a2"},
		{"CCC.NS", "c1"},
	}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d: %v", len(want), len(items), items)
	}
	for i, w := range want {
		if items[i].Ticker != w.ticker || items[i].Title != w.title {
			t.Errorf("item %d = {%s %s}, want {%s %s}",
				i, items[i].Ticker, items[i].Title, w.ticker, w.title)
		}
	}
}

func TestFetchAllNews_SlowTickerIsolated(t *testing.T) {
	uni := testUniverse(t, "AAA.NS", "SLOW.NS", "CCC.NS")
	prov := &fakeProvider{
		name: "fake",
		items: map[string][]models.NewsItem{
			"AAA.NS":  {{Title: "a1"}},
			"SLOW.NS": {{Title: "never delivered"}},
			"CCC.NS":  {{Title: "c1"}},
		},
		delay: map[string]time.Duration{"SLOW.NS": time.Second},
	}

	agg := New(prov, nil, uni, nil, Options{FetchTimeout: 50 * time.Millisecond})
	items, err := agg.FetchAllNews(context.Background())
	if err != nil {
		t.Fatalf("FetchAllNews: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected the two fast tickers only, got %v", items)
	}
	if items[0].Ticker != "AAA.NS" || items[1].Ticker != "CCC.NS" {
		t.Errorf("canonical order broken: %v", items)
	}
}

func TestFetchAllNews_CacheHitAndExpiry(t *testing.T) {
	uni := testUniverse(t, "AAA.NS")
	prov := &fakeProvider{
		name:  "fake",
		items: map[string][]models.NewsItem{"AAA.NS": {{Title: "a1"}}},
	}
	store := cache.New(time.Minute)
	agg := New(prov, nil, uni, store, Options{})

	if _, err := agg.FetchAllNews(context.Background()); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if _, err := agg.FetchAllNews(context.Background()); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if got := atomic.LoadInt32(&prov.calls); got != 1 {
		t.Errorf("cache hit should not re-invoke provider, got %d calls", got)
	}

	agg.Invalidate()
	if _, err := agg.FetchAllNews(context.Background()); err != nil {
		t.Fatalf("post-invalidate fetch: %v", err)
	}
	if got := atomic.LoadInt32(&prov.calls); got != 2 {
		t.Errorf("invalidation should force a refetch, got %d calls", got)
	}
}

func TestFetchAllNews_FallbackOnlyWhenPrimaryEmpty(t *testing.T) {
	uni := testUniverse(t, "AAA.NS", "BBB.NS")
	primary := &fakeProvider{
		name:  "primary",
		items: map[string][]models.NewsItem{"AAA.NS": {{Title: "from primary"}}},
	}
	fallback := &fakeProvider{
		name: "fallback",
		items: map[string][]models.NewsItem{
			"AAA.NS": {{Title: "should not appear"}},
			"BBB.NS": {{Title: "from fallback"}},
		},
	}

	agg := New(primary, fallback, uni, nil, Options{})
	items, err := agg.FetchAllNews(context.Background())
	if err != nil {
		t.Fatalf("FetchAllNews: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %v", items)
	}
	if items[0].Title != "from primary" || items[1].Title != "from fallback" {
		t.Errorf("fallback must fill only empty tickers: %v", items)
	}
	if items[1].Ticker != "BBB.NS" {
		t.Errorf("fallback items must be stamped too, got %q", items[1].Ticker)
	}
}

func TestFetchAllNews_PerTickerLimit(t *testing.T) {
	uni := testUniverse(t, "AAA.NS")
	many := make([]models.NewsItem, 0, 15)
	for i := 0; i < 15; i++ {
		many = append(many, models.NewsItem{Title: "t"})
	}
	prov := &fakeProvider{name: "fake", items: map[string][]models.NewsItem{"AAA.NS": many}}

	agg := New(prov, nil, uni, nil, Options{PerTickerLimit: 3})
	items, err := agg.FetchAllNews(context.Background())
	if err != nil {
		t.Fatalf("FetchAllNews: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("expected per-ticker limit of 3, got %d", len(items))
	}
}

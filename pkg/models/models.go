package models

// Action is a coarse per-ticker recommendation.
type Action string

const (
	ActionBuy  Action = "Buy"
	ActionHold Action = "Hold"
	ActionSell Action = "Sell"
)

// NewsItem is one normalized news article. All fields default to empty
// strings when the upstream payload omits them. Ticker is stamped by the
// aggregator, never by a provider.
type NewsItem struct {
	Ticker    string `json:"ticker"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	Link      string `json:"link"`
}

// SentimentRecord is the per-article sentiment derived from title + summary.
type SentimentRecord struct {
	Ticker       string  `json:"ticker"`
	Title        string  `json:"title"`
	Summary      string  `json:"summary"`
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// PriceHistory is an ordered closing-price series. Dates and Closes are
// parallel slices of equal length.
type PriceHistory struct {
	Dates  []string  `json:"dates"`
	Closes []float64 `json:"closes"`
}

// IsEmpty reports whether the series holds no points.
func (p PriceHistory) IsEmpty() bool {
	return len(p.Closes) == 0
}

// TechnicalSnapshot holds momentum/trend indicators computed from a closing
// price series. SMA/EMA entries are nil when the series was shorter than the
// requested window.
type TechnicalSnapshot struct {
	RSI          float64             `json:"rsi"`
	SMA          map[string]*float64 `json:"sma"`
	EMA          map[string]*float64 `json:"ema"`
	CurrentPrice *float64            `json:"current_price"`
}

// FundamentalSnapshot is a sparse mapping of valuation/growth metrics.
// Absent upstream fields are omitted, never defaulted to zero.
type FundamentalSnapshot map[string]float64

// Get returns the metric value and whether it is present.
func (f FundamentalSnapshot) Get(key string) (float64, bool) {
	v, ok := f[key]
	return v, ok
}

// TechnicalFactors is the technical contribution recorded on a recommendation.
type TechnicalFactors struct {
	RSI   float64  `json:"rsi"`
	SMA20 *float64 `json:"sma_20"`
	SMA50 *float64 `json:"sma_50"`
}

// FundamentalFactors is the fundamental contribution recorded on a recommendation.
type FundamentalFactors struct {
	PERatio   *float64 `json:"pe_ratio"`
	MarketCap *float64 `json:"market_cap"`
}

// Factors lists the signals that contributed to a recommendation. Sentiment
// is always present; technical and fundamental appear only when the
// corresponding enrichment produced data.
type Factors struct {
	Sentiment   float64             `json:"sentiment"`
	Technical   *TechnicalFactors   `json:"technical,omitempty"`
	Fundamental *FundamentalFactors `json:"fundamental,omitempty"`
}

// Recommendation is the per-ticker output of the recommendation engine.
// Recomputed fresh on every aggregation cycle, never persisted.
type Recommendation struct {
	Ticker         string  `json:"ticker"`
	AvgPolarity    float64 `json:"avg_polarity"`
	Recommendation Action  `json:"recommendation"`
	Confidence     float64 `json:"confidence"`
	Factors        Factors `json:"factors"`
	NewsCount      int     `json:"news_count"`
}

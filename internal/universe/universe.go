package universe

import (
	"fmt"
	"strings"
)

// Market tags which exchange family a ticker belongs to.
type Market string

const (
	MarketIndian Market = "Indian"
	MarketUS     Market = "US"
)

// Universe is the static, ordered list of symbols the pipeline works on.
// It is read-only configuration: the canonical order here drives the order
// of every downstream output.
type Universe struct {
	symbols []string
	index   map[string]int
}

// New builds a universe from an ordered symbol list. Symbols must be unique.
func New(symbols []string) (*Universe, error) {
	index := make(map[string]int, len(symbols))
	for i, s := range symbols {
		if _, dup := index[s]; dup {
			return nil, fmt.Errorf("duplicate ticker in universe: %s", s)
		}
		index[s] = i
	}
	return &Universe{symbols: symbols, index: index}, nil
}

func mustNew(symbols []string) *Universe {
	u, err := New(symbols)
	if err != nil {
		panic(err)
	}
	return u
}

// ForMarket returns the built-in universe for a market name ("indian"/"us").
func ForMarket(market string) (*Universe, error) {
	switch strings.ToLower(market) {
	case "indian":
		return Indian(), nil
	case "us":
		return US(), nil
	default:
		return nil, fmt.Errorf("unknown market %q", market)
	}
}

// Indian returns the NSE large-cap universe.
func Indian() *Universe {
	return mustNew(indianTickers)
}

// US returns the NYSE/NASDAQ large-cap universe.
func US() *Universe {
	return mustNew(usTickers)
}

// Symbols returns the symbols in canonical order.
func (u *Universe) Symbols() []string {
	out := make([]string, len(u.symbols))
	copy(out, u.symbols)
	return out
}

// Len returns the number of symbols.
func (u *Universe) Len() int {
	return len(u.symbols)
}

// Contains reports whether the ticker is part of the universe.
func (u *Universe) Contains(ticker string) bool {
	_, ok := u.index[ticker]
	return ok
}

// Position returns the canonical position of a ticker, or -1.
func (u *Universe) Position(ticker string) int {
	if i, ok := u.index[ticker]; ok {
		return i
	}
	return -1
}

// MarketOf derives the market from the exchange suffix:
// .NS (NSE) and .BO (BSE) are Indian, everything else is US.
func MarketOf(ticker string) Market {
	if strings.HasSuffix(ticker, ".NS") || strings.HasSuffix(ticker, ".BO") {
		return MarketIndian
	}
	return MarketUS
}

// CleanSymbol strips the exchange suffix for providers that expect the bare
// NSE symbol.
func CleanSymbol(ticker string) string {
	ticker = strings.TrimSuffix(ticker, ".NS")
	return strings.TrimSuffix(ticker, ".BO")
}

// Sector returns the sector tag for a ticker, or "Unknown".
func Sector(ticker string) string {
	if s, ok := sectorMap[ticker]; ok {
		return s
	}
	return "Unknown"
}

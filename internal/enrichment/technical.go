package enrichment

import (
	"fmt"

	"github.com/cinar/indicator"

	"github.com/stocksense/advisor/pkg/models"
)

// minHistory is the minimum number of closes required before any technical
// snapshot is produced at all.
const minHistory = 20

// rsiPeriod is the Wilder smoothing window.
const rsiPeriod = 14

// rsiEpsilon keeps the relative-strength division defined when a series has
// no losing days.
const rsiEpsilon = 1e-10

// smaWindows and emaWindows are the moving-average windows reported per
// snapshot; a window longer than the series is reported as nil.
var (
	smaWindows = []int{20, 50}
	emaWindows = []int{20, 50}
)

// Calculator computes technical snapshots from closing-price history.
type Calculator struct{}

// NewCalculator creates a technical calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Snapshot computes the technical snapshot for a closing-price series.
// Returns an error when the series is shorter than the minimum history;
// individual windows degrade to nil instead of failing the snapshot.
func (c *Calculator) Snapshot(history models.PriceHistory) (*models.TechnicalSnapshot, error) {
	closes := history.Closes
	if len(closes) < minHistory {
		return nil, fmt.Errorf("insufficient history for indicators (need at least %d closes, got %d)", minHistory, len(closes))
	}

	snapshot := &models.TechnicalSnapshot{
		RSI: RSI(closes, rsiPeriod),
		SMA: make(map[string]*float64, len(smaWindows)),
		EMA: make(map[string]*float64, len(emaWindows)),
	}

	for _, window := range smaWindows {
		key := fmt.Sprintf("sma_%d", window)
		snapshot.SMA[key] = lastOfWindow(indicator.Sma, window, closes)
	}
	for _, window := range emaWindows {
		key := fmt.Sprintf("ema_%d", window)
		snapshot.EMA[key] = lastOfWindow(indicator.Ema, window, closes)
	}

	current := closes[len(closes)-1]
	snapshot.CurrentPrice = &current

	return snapshot, nil
}

// RSI computes Wilder's relative strength index over the last value of the
// series. A series too short for one full period reads as neutral 50.
func RSI(closes []float64, period int) float64 {
	if len(closes) < period+1 {
		return 50
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss += -delta
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	for i := period + 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	rs := avgGain / (avgLoss + rsiEpsilon)
	return 100 - 100/(1+rs)
}

// lastOfWindow runs a cinar moving-average function and returns the last
// value, or nil when the series is shorter than the window.
func lastOfWindow(fn func(int, []float64) []float64, window int, closes []float64) *float64 {
	if len(closes) < window {
		return nil
	}
	series := fn(window, closes)
	if len(series) == 0 {
		return nil
	}
	last := series[len(series)-1]
	return &last
}

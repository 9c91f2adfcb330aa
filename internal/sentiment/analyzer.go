package sentiment

import (
	"strings"
)

// Score is a polarity/subjectivity pair for one piece of text.
// Polarity is in [-1, 1], subjectivity in [0, 1].
type Score struct {
	Polarity     float64
	Subjectivity float64
}

// Analyzer performs keyword-based sentiment analysis of financial headlines.
// Scoring is deterministic: the same text always yields the same score.
type Analyzer struct {
	lexicon map[string]lexEntry
}

type lexEntry struct {
	polarity     float64 // signed contribution, negative for bearish terms
	subjectivity float64 // how opinionated the term is, 0..1
}

// NewAnalyzer creates new sentiment analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{lexicon: buildLexicon()}
}

// Score analyzes text and returns a polarity/subjectivity pair.
// Empty or whitespace-only input returns exactly {0, 0} without touching
// the lexicon; callers rely on that short-circuit being deterministic.
func (a *Analyzer) Score(text string) Score {
	text = strings.TrimSpace(text)
	if text == "" {
		return Score{}
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return Score{}
	}

	var polaritySum float64
	var subjectivitySum float64
	matchCount := 0

	for _, word := range words {
		word = strings.Trim(word, ".,!?;:'\"()")

		if entry, ok := a.lexicon[word]; ok {
			polaritySum += entry.polarity
			subjectivitySum += entry.subjectivity
			matchCount++
		}
	}

	if matchCount == 0 {
		return Score{}
	}

	// Normalize polarity by total word count so one loaded word in a long
	// headline counts for less than the same word alone.
	polarity := polaritySum / float64(len(words))
	polarity = clamp(polarity, -1.0, 1.0)

	subjectivity := subjectivitySum / float64(matchCount)
	subjectivity = clamp(subjectivity, 0.0, 1.0)

	return Score{Polarity: polarity, Subjectivity: subjectivity}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

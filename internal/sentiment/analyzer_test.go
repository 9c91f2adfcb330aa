package sentiment

import (
	"testing"
)

func TestAnalyzer_EmptyInput(t *testing.T) {
	analyzer := NewAnalyzer()

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs and newlines", "\t\n  \t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := analyzer.Score(tt.text)
			if score.Polarity != 0.0 || score.Subjectivity != 0.0 {
				t.Errorf("empty input must score exactly {0, 0}, got {%v, %v}",
					score.Polarity, score.Subjectivity)
			}
		})
	}
}

func TestAnalyzer_Direction(t *testing.T) {
	analyzer := NewAnalyzer()

	tests := []struct {
		name     string
		text     string
		expected string // positive, negative, or neutral
	}{
		{
			name:     "earnings beat",
			text:     "TCS beats estimates, profit surges on strong growth",
			expected: "positive",
		},
		{
			name:     "analyst upgrade",
			text:     "Brokerage upgrades Reliance to buy after record quarter",
			expected: "positive",
		},
		{
			name:     "earnings miss",
			text:     "Wipro misses estimates, shares plunge on weak guidance",
			expected: "negative",
		},
		{
			name:     "regulatory trouble",
			text:     "Bank faces fraud probe, lawsuit and penalty fears grow",
			expected: "negative",
		},
		{
			name:     "neutral filing",
			text:     "Company announces board meeting scheduled for next Tuesday",
			expected: "neutral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := analyzer.Score(tt.text)

			var got string
			if score.Polarity > 0 {
				got = "positive"
			} else if score.Polarity < 0 {
				got = "negative"
			} else {
				got = "neutral"
			}

			if got != tt.expected {
				t.Errorf("expected %s sentiment, got %s (polarity %.3f)",
					tt.expected, got, score.Polarity)
			}
		})
	}
}

func TestAnalyzer_Range(t *testing.T) {
	analyzer := NewAnalyzer()

	texts := []string{
		"bullish rally surge soars record breakout",
		"bearish crash plunge collapse panic selloff",
		"shares trade flat in quiet session",
		"surge crash rally plunge",
	}

	for _, text := range texts {
		score := analyzer.Score(text)

		if score.Polarity < -1.0 || score.Polarity > 1.0 {
			t.Errorf("polarity out of [-1,1]: %.3f for %q", score.Polarity, text)
		}
		if score.Subjectivity < 0.0 || score.Subjectivity > 1.0 {
			t.Errorf("subjectivity out of [0,1]: %.3f for %q", score.Subjectivity, text)
		}
	}
}

func TestAnalyzer_Deterministic(t *testing.T) {
	analyzer := NewAnalyzer()
	text := "Infosys beats estimates but warns of weak demand; shares volatile"

	first := analyzer.Score(text)
	for i := 0; i < 10; i++ {
		if got := analyzer.Score(text); got != first {
			t.Fatalf("score not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestAnalyzer_PunctuationStripped(t *testing.T) {
	analyzer := NewAnalyzer()

	plain := analyzer.Score("profit surges")
	punctuated := analyzer.Score("profit surges!")

	if plain != punctuated {
		t.Errorf("trailing punctuation changed score: %+v vs %+v", plain, punctuated)
	}
}

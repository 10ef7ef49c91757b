package sentiment

import (
	"context"
	"testing"
)

func TestLexiconAnalyzer(t *testing.T) {
	a := NewLexiconAnalyzer()
	ctx := context.Background()

	tests := []struct {
		name string
		text string
		want Label
	}{
		{"positive", "I really enjoy working with Go, it is great", LabelPositive},
		{"negative", "This was a terrible and confusing experience", LabelNegative},
		{"neutral", "The function returns a pointer to the struct", LabelNeutral},
		{"tie", "The good parts were good but the bad parts were bad and terrible", LabelNegative},
		{"balanced tie", "good bad", LabelNeutral},
		{"punctuation stripped", "Great! I love it.", LabelPositive},
		{"case insensitive", "GREAT stuff", LabelPositive},
		{"empty", "", LabelNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Analyze(ctx, tt.text); got != tt.want {
				t.Errorf("Analyze(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

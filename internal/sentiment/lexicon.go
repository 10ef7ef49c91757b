package sentiment

import (
	"context"
	"strings"
)

// Small polarity lexicons for the offline scorer. Coverage is
// deliberately narrow; anything ambiguous scores neutral.
var (
	positiveWords = map[string]struct{}{
		"good": {}, "great": {}, "excellent": {}, "love": {}, "like": {},
		"enjoy": {}, "happy": {}, "excited": {}, "interesting": {},
		"easy": {}, "best": {}, "thanks": {}, "thank": {}, "awesome": {},
		"confident": {}, "strong": {},
	}
	negativeWords = map[string]struct{}{
		"bad": {}, "terrible": {}, "hate": {}, "dislike": {}, "hard": {},
		"difficult": {}, "confusing": {}, "frustrated": {}, "unhappy": {},
		"worst": {}, "boring": {}, "annoying": {}, "nervous": {},
		"worried": {}, "stress": {}, "stressed": {},
	}
)

// LexiconAnalyzer scores text by counting polarity words. It is the
// deterministic fallback behind the model-backed analyzer and the
// default in offline mode.
type LexiconAnalyzer struct{}

// NewLexiconAnalyzer creates a lexicon-based analyzer.
func NewLexiconAnalyzer() *LexiconAnalyzer {
	return &LexiconAnalyzer{}
}

// Analyze counts positive and negative words; ties are neutral.
func (a *LexiconAnalyzer) Analyze(_ context.Context, text string) Label {
	score := 0
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:'\"()")
		if _, ok := positiveWords[word]; ok {
			score++
		}
		if _, ok := negativeWords[word]; ok {
			score--
		}
	}

	switch {
	case score > 0:
		return LabelPositive
	case score < 0:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

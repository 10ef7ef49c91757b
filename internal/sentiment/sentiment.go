// Package sentiment annotates candidate messages with a coarse
// sentiment label for the interview transcript. Annotation is best
// effort: any failure degrades to LabelNeutral and never blocks the
// transcript from being written.
package sentiment

import "context"

// Label is a coarse sentiment classification.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNeutral  Label = "neutral"
	LabelNegative Label = "negative"
)

// Analyzer classifies the sentiment of a piece of text.
type Analyzer interface {
	// Analyze returns a label for the text. Implementations must not
	// fail: on any internal error they return LabelNeutral.
	Analyze(ctx context.Context, text string) Label
}

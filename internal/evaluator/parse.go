package evaluator

import (
	"fmt"
	"strings"
)

// Line markers of the evaluation contract.
const (
	evaluationMarker = "EVALUATION:"
	feedbackMarker   = "FEEDBACK:"
)

// ParseEvaluation scans a model reply for the labeled verdict and
// feedback lines. An absent or unrecognized label is a parse failure;
// the caller falls back to the local heuristic.
func ParseEvaluation(text string) (Classification, string, error) {
	var label, feedback string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, evaluationMarker) && label == "":
			label = strings.TrimSpace(strings.TrimPrefix(line, evaluationMarker))
		case strings.HasPrefix(line, feedbackMarker) && feedback == "":
			feedback = strings.TrimSpace(strings.TrimPrefix(line, feedbackMarker))
		}
	}

	if label == "" {
		return "", "", fmt.Errorf("no %s line in reply", evaluationMarker)
	}

	var class Classification
	switch strings.ToUpper(label) {
	case string(ClassAdequate):
		class = ClassAdequate
	case string(ClassNeedsClarification):
		class = ClassNeedsClarification
	case string(ClassIrrelevant):
		class = ClassIrrelevant
	default:
		return "", "", fmt.Errorf("unrecognized evaluation label %q", label)
	}

	if feedback == "" {
		feedback = defaultFeedback(class)
	}

	return class, feedback, nil
}

func defaultFeedback(class Classification) string {
	switch class {
	case ClassAdequate:
		return "Good answer! Moving to the next question."
	case ClassIrrelevant:
		return "That doesn't seem to address the question. Could you answer what was asked?"
	default:
		return "Could you please elaborate more on your answer or provide more specific details?"
	}
}

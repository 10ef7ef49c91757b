// Package inputcheck pre-screens free-text input before it is spent on
// a generation-service call. The checks are cheap and deterministic and
// always run first, so unusable input never costs a classification call.
package inputcheck

import "strings"

// Reason identifies why input was rejected.
type Reason string

const (
	ReasonBlank              Reason = "blank"
	ReasonTooShort           Reason = "too_short"
	ReasonGibberish          Reason = "gibberish"
	ReasonInsufficientDetail Reason = "insufficient_detail"
)

// Result is the outcome of a validation check.
type Result struct {
	Valid  bool
	Reason Reason

	// Message is the user-facing clarification prompt for the reason.
	// Empty when Valid.
	Message string
}

// Thresholds for the ordered rules below.
const (
	minLength        = 3 // trimmed characters
	gibberishMinLen  = 5 // repeated-char check applies above this length
	minDistinctRunes = 3
	minTechnicalWord = 3 // words required in technical context
)

// messages maps each rejection reason to its clarification prompt.
var messages = map[Reason]string{
	ReasonBlank:              "Please type an answer before submitting.",
	ReasonTooShort:           "Your answer is very short. Could you expand on it a little?",
	ReasonGibberish:          "That doesn't look like a readable answer. Could you rephrase it?",
	ReasonInsufficientDetail: "Could you give a bit more detail? A few sentences about your approach would help.",
}

// Validate applies the screening rules in order; the first match wins.
// technical enables the word-count rule used for interview answers.
func Validate(text string, technical bool) Result {
	trimmed := strings.TrimSpace(text)

	if len(trimmed) == 0 {
		return reject(ReasonBlank)
	}

	if len([]rune(trimmed)) < minLength {
		return reject(ReasonTooShort)
	}

	// Repeated-character noise: long input drawing on almost no
	// distinct characters ("aaaaaa", "ababababab").
	if distinctRunes(trimmed) < minDistinctRunes && len([]rune(trimmed)) > gibberishMinLen {
		return reject(ReasonGibberish)
	}

	if technical && len(strings.Fields(trimmed)) < minTechnicalWord {
		return reject(ReasonInsufficientDetail)
	}

	return Result{Valid: true}
}

func reject(r Reason) Result {
	return Result{Valid: false, Reason: r, Message: messages[r]}
}

func distinctRunes(s string) int {
	seen := make(map[rune]struct{})
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}

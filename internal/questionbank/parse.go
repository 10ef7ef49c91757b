package questionbank

import (
	"fmt"
	"strings"
)

// Line markers of the generation contract. The model is instructed to
// emit repeated DIFFICULTY/QUESTION pairs; anything else is ignored by
// the scanner, and a recoverable set that is not exactly four pairs in
// the required order is a parse failure.
const (
	difficultyMarker = "DIFFICULTY:"
	questionMarker   = "QUESTION:"
)

// ParseQuestions scans a model reply for DIFFICULTY/QUESTION pairs and
// returns the question set. It fails if the number of complete pairs is
// not exactly four or the difficulty sequence does not match
// RequiredSequence (case-insensitive).
func ParseQuestions(text string) ([]Question, error) {
	var questions []Question
	var current *Question

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, difficultyMarker):
			if current != nil {
				questions = append(questions, *current)
			}
			label := strings.TrimSpace(strings.TrimPrefix(line, difficultyMarker))
			current = &Question{Difficulty: NormalizeDifficulty(label)}
		case strings.HasPrefix(line, questionMarker):
			if current == nil {
				continue
			}
			current.Text = strings.TrimSpace(strings.TrimPrefix(line, questionMarker))
		}
	}
	if current != nil {
		questions = append(questions, *current)
	}

	// Drop incomplete pairs (a difficulty with no question text).
	complete := questions[:0]
	for _, q := range questions {
		if q.Text != "" {
			complete = append(complete, q)
		}
	}
	questions = complete

	if len(questions) != len(RequiredSequence) {
		return nil, fmt.Errorf("expected %d questions, recovered %d", len(RequiredSequence), len(questions))
	}

	for i, q := range questions {
		if q.Difficulty != RequiredSequence[i] {
			return nil, fmt.Errorf("difficulty at position %d is %q, want %q",
				i, q.Difficulty, RequiredSequence[i])
		}
	}

	return questions, nil
}

package questionbank

import "strings"

// Difficulty is the level of a technical question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// RequiredSequence is the mandated difficulty order of an interview's
// four questions.
var RequiredSequence = []Difficulty{
	DifficultyEasy, DifficultyEasy, DifficultyMedium, DifficultyHard,
}

// NormalizeDifficulty maps a case-insensitive label to its canonical
// form. Unknown labels are returned title-cased so the caller can
// compare and reject them.
func NormalizeDifficulty(label string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	}
	return Difficulty(strings.TrimSpace(label))
}

// Resolution is the final evaluation tag attached to a question once the
// candidate's answer for it is resolved. Empty until then.
type Resolution string

const (
	ResolutionAdequate           Resolution = "ADEQUATE"
	ResolutionNeedsClarification Resolution = "NEEDS_CLARIFICATION"
	ResolutionIrrelevant         Resolution = "IRRELEVANT"
	ResolutionFailedAttempts     Resolution = "FAILED_ATTEMPTS"
)

// Question is one generated technical question.
type Question struct {
	// Difficulty is canonical (Easy/Medium/Hard) on every Question this
	// package returns.
	Difficulty Difficulty `json:"difficulty"`

	// Text is the question shown to the candidate.
	Text string `json:"question"`

	// Resolution is set by the session controller when the candidate's
	// answer for this question is accepted or the retry budget runs out.
	Resolution Resolution `json:"resolution,omitempty"`
}

// Source reports where a question set came from.
type Source string

const (
	// SourceGenerated means the set was produced by the generation service.
	SourceGenerated Source = "generated"

	// SourceFallback means the deterministic local templates were used.
	SourceFallback Source = "fallback"
)

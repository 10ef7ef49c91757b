package evaluator

import (
	"context"
	"strings"

	"github.com/abhisek/talentscout/internal/inputcheck"
	"github.com/abhisek/talentscout/internal/llm"
)

// Classification is the evaluator's verdict on an answer.
type Classification string

const (
	ClassAdequate           Classification = "ADEQUATE"
	ClassNeedsClarification Classification = "NEEDS_CLARIFICATION"
	ClassIrrelevant         Classification = "IRRELEVANT"

	// ClassError marks a service-call failure; the session treats it as
	// non-adequate and prompts a retry.
	ClassError Classification = "ERROR"
)

// Result is the outcome of evaluating one answer.
type Result struct {
	Adequate       bool
	Classification Classification
	Feedback       string
}

// Config controls evaluation behavior.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MinAnswerLength is the heuristic threshold: shorter answers are
	// classified NEEDS_CLARIFICATION when the model's reply is unusable.
	MinAnswerLength int

	// HedgePhrases mark answers as NEEDS_CLARIFICATION in the heuristic
	// path ("not sure", "don't know").
	HedgePhrases []string
}

// DefaultConfig returns the recommended evaluation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       200,
		Temperature:     0.3,
		MinAnswerLength: 20,
		HedgePhrases:    []string{"not sure", "don't know", "dont know", "no idea"},
	}
}

const errorFeedback = "I couldn't process your answer just now. Please try submitting it again."

// Evaluator classifies candidate answers.
type Evaluator struct {
	provider llm.Provider
	config   Config
}

// New creates an Evaluator. A nil provider forces the heuristic path.
func New(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, config: cfg}
}

// Evaluate classifies one answer. The input screen runs first so a
// blank or gibberish answer never costs a service call; after that the
// model is asked for the strict two-line verdict, with the length/hedge
// heuristic covering unparseable replies and ClassError covering
// service failures.
func (e *Evaluator) Evaluate(ctx context.Context, question, answer, techStack, language string) Result {
	if check := inputcheck.Validate(answer, true); !check.Valid {
		return Result{
			Adequate:       false,
			Classification: ClassNeedsClarification,
			Feedback:       check.Message,
		}
	}

	if e.provider == nil {
		return e.heuristic(answer)
	}

	ctx = llm.WithPurpose(ctx, "answer-eval")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(question, answer, techStack, language)},
		},
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	})
	if err != nil {
		return Result{
			Adequate:       false,
			Classification: ClassError,
			Feedback:       errorFeedback,
		}
	}

	class, feedback, perr := ParseEvaluation(resp.Text())
	if perr != nil {
		return e.heuristic(answer)
	}

	return Result{
		Adequate:       class == ClassAdequate,
		Classification: class,
		Feedback:       feedback,
	}
}

// heuristic is the deterministic local classification used when the
// model's reply is absent or unusable.
func (e *Evaluator) heuristic(answer string) Result {
	trimmed := strings.TrimSpace(answer)
	lower := strings.ToLower(trimmed)

	if len(trimmed) < e.config.MinAnswerLength {
		return Result{
			Adequate:       false,
			Classification: ClassNeedsClarification,
			Feedback:       "Please provide a more detailed answer.",
		}
	}
	for _, phrase := range e.config.HedgePhrases {
		if strings.Contains(lower, phrase) {
			return Result{
				Adequate:       false,
				Classification: ClassNeedsClarification,
				Feedback:       "Could you elaborate on the parts you do know? Specific details help.",
			}
		}
	}

	return Result{
		Adequate:       true,
		Classification: ClassAdequate,
		Feedback:       "Thank you for your answer.",
	}
}

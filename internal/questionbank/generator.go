package questionbank

import (
	"context"

	"github.com/abhisek/talentscout/internal/llm"
)

// GenerateInput holds the candidate context for question generation.
type GenerateInput struct {
	// TechStack is the free-text, comma-separated skills string from
	// the candidate profile.
	TechStack string

	// ExperienceYears is the numeric prefix of the experience bucket
	// ("3" for the "3-5" bucket).
	ExperienceYears string

	// Language is the interview language code ("en" default).
	Language string
}

// Config controls the generation request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1000,
		Temperature: 0.7,
	}
}

// Generator produces the four-question interview set.
// It guarantees exactly four questions in the required difficulty order
// regardless of what the generation service does: any service error or
// malformed reply falls back to local templates.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator. A nil provider is allowed and forces the
// fallback path (offline mode).
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate returns the question set and where it came from. It never
// fails: the fallback covers service errors, wrong counts, and wrong
// difficulty order.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) ([]Question, Source) {
	if g.provider == nil {
		return Fallback(input.TechStack), SourceFallback
	}

	ctx = llm.WithPurpose(ctx, "question-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return Fallback(input.TechStack), SourceFallback
	}

	questions, err := ParseQuestions(resp.Text())
	if err != nil {
		return Fallback(input.TechStack), SourceFallback
	}

	return questions, SourceGenerated
}

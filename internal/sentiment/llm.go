package sentiment

import (
	"context"
	"encoding/json"

	"github.com/abhisek/talentscout/internal/llm"
)

// labelSchema constrains the model to one of the three labels.
var labelSchema = &llm.Schema{
	Name:        "sentiment-label",
	Description: "Coarse sentiment classification of a candidate message",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"label": map[string]any{
				"type": "string",
				"enum": []any{"positive", "neutral", "negative"},
			},
		},
		"required":             []any{"label"},
		"additionalProperties": false,
	},
}

const sentimentSystemPrompt = `Classify the overall sentiment of the candidate's message as positive, neutral, or negative. Judge tone, not technical correctness.`

// LLMAnalyzer classifies sentiment with the generation service, using a
// schema-constrained JSON reply. Failures fall through to the lexicon
// scorer, so this analyzer never errors.
type LLMAnalyzer struct {
	provider llm.Provider
	fallback *LexiconAnalyzer
}

// NewLLMAnalyzer creates a model-backed analyzer.
func NewLLMAnalyzer(provider llm.Provider) *LLMAnalyzer {
	return &LLMAnalyzer{
		provider: provider,
		fallback: NewLexiconAnalyzer(),
	}
}

type labelOutput struct {
	Label string `json:"label"`
}

// Analyze classifies the text, degrading to the lexicon on any failure.
func (a *LLMAnalyzer) Analyze(ctx context.Context, text string) Label {
	if a.provider == nil {
		return a.fallback.Analyze(ctx, text)
	}

	ctx = llm.WithPurpose(ctx, "sentiment")

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: sentimentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: text},
		},
		Schema:    labelSchema,
		MaxTokens: 50,
	})
	if err != nil {
		return a.fallback.Analyze(ctx, text)
	}

	var out labelOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return a.fallback.Analyze(ctx, text)
	}

	switch Label(out.Label) {
	case LabelPositive, LabelNeutral, LabelNegative:
		return Label(out.Label)
	}
	return LabelNeutral
}

package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/talentscout/internal/store"
)

// captureRepo records appended events without a database.
type captureRepo struct {
	events []store.LLMRequestEventData
}

func (r *captureRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func (r *captureRepo) QueryLLMEvents(context.Context, int) ([]store.LLMEvent, error) {
	return nil, nil
}

func (r *captureRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (r *captureRepo) UsageByPurpose(context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

func TestLoggingProviderRecordsProviderAndModel(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`"ok"`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 5},
	})
	repo := &captureRepo{}
	p := WithLogging(mock, "anthropic", repo)

	ctx := WithPurpose(context.Background(), "question_generation")
	if _, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("appended %d events, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "anthropic" {
		t.Errorf("Provider = %q, want %q", e.Provider, "anthropic")
	}
	if e.Model != "mock" {
		t.Errorf("Model = %q, want %q", e.Model, "mock")
	}
	if e.Purpose != "question_generation" {
		t.Errorf("Purpose = %q, want %q", e.Purpose, "question_generation")
	}
	if !e.Success {
		t.Error("Success = false, want true")
	}
	if e.InputTokens != 10 || e.OutputTokens != 5 {
		t.Errorf("tokens = %d/%d, want 10/5", e.InputTokens, e.OutputTokens)
	}
}

package evaluator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/talentscout/internal/llm"
)

const question = "How would you optimize a slow SQL query?"

func TestEvaluate_ScreeningSkipsServiceCall(t *testing.T) {
	mock := llm.NewMockProvider()
	e := New(mock, DefaultConfig())

	res := e.Evaluate(context.Background(), question, "", "SQL", "en")
	if res.Adequate {
		t.Fatal("blank answer classified adequate")
	}
	if res.Classification != ClassNeedsClarification {
		t.Errorf("classification = %q, want %q", res.Classification, ClassNeedsClarification)
	}
	if mock.CallCount() != 0 {
		t.Errorf("blank answer cost %d service calls", mock.CallCount())
	}
}

func TestEvaluate_ModelVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("EVALUATION: ADEQUATE\nFEEDBACK: Good use of indexes."),
	})
	e := New(mock, DefaultConfig())

	res := e.Evaluate(context.Background(), question, "I would add an index on the join column and check the plan.", "SQL", "en")
	if !res.Adequate {
		t.Fatal("expected adequate")
	}
	if res.Feedback != "Good use of indexes." {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestEvaluate_ServiceErrorIsClassError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	e := New(mock, DefaultConfig())

	res := e.Evaluate(context.Background(), question, "I would add an index on the join column.", "SQL", "en")
	if res.Adequate {
		t.Fatal("service error classified adequate")
	}
	if res.Classification != ClassError {
		t.Errorf("classification = %q, want %q", res.Classification, ClassError)
	}
	if res.Feedback == "" {
		t.Error("expected retry feedback on service error")
	}
}

func TestEvaluate_UnparseableReplyFallsBackToHeuristic(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("I think this answer is pretty good overall."),
	})
	e := New(mock, DefaultConfig())

	// Long, hedge-free answer: the heuristic accepts it.
	res := e.Evaluate(context.Background(), question, "I would add a covering index and rewrite the subquery as a join.", "SQL", "en")
	if !res.Adequate {
		t.Fatalf("heuristic rejected a long answer: %+v", res)
	}
}

func TestEvaluate_NilProviderHeuristic(t *testing.T) {
	e := New(nil, DefaultConfig())
	ctx := context.Background()

	tests := []struct {
		name     string
		answer   string
		adequate bool
	}{
		{"long answer", "I would add a covering index and rewrite the subquery.", true},
		{"short answer", "add an index", false},
		{"hedged answer", "Honestly I am not sure how I would approach this one.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Evaluate(ctx, question, tt.answer, "SQL", "en")
			if res.Adequate != tt.adequate {
				t.Errorf("Adequate = %v, want %v (%+v)", res.Adequate, tt.adequate, res)
			}
		})
	}
}

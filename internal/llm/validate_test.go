package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func labelTestSchema() *Schema {
	return &Schema{
		Name:        "test-label",
		Description: "test schema",
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
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage("anything at all")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	if err := validateResponse(labelTestSchema(), json.RawMessage(`{"label":"positive"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	err := validateResponse(labelTestSchema(), json.RawMessage(`not json`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestValidateResponse_SchemaViolation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"wrong enum value", `{"label":"ecstatic"}`},
		{"missing field", `{}`},
		{"extra field", `{"label":"neutral","score":5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(labelTestSchema(), json.RawMessage(tt.raw))
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
			}
		})
	}
}

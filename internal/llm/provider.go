package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over the text-generation service.
// All interview components (question generation, answer evaluation,
// sentiment annotation) talk to the model through this interface.
type Provider interface {
	// Generate sends a prompt and returns the model's response.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the response Content is validated
	// JSON. Without a Schema, Content is the raw text reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured for.
	ModelID() string
}

// Request describes a single call to the generation service.
type Request struct {
	// System sets the model's role and output constraints.
	System string

	// Messages is the conversation. Interview calls are single-turn,
	// so this usually holds one user message.
	Messages []Message

	// Schema, when set, constrains the response to JSON matching this
	// schema. The line-oriented interview contracts leave it nil.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness (0.0 - 1.0). Zero means deterministic.
	Temperature float64
}

// Message is one turn of conversation sent to the model.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes a JSON structure the response must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI-compatible APIs). Kebab-case, e.g. "sentiment-label".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema, otherwise the raw text wrapped as a RawMessage.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Text returns the response content as a plain string.
func (r *Response) Text() string {
	return string(r.Content)
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

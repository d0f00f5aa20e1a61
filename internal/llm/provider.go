package llm

import (
	"context"
	"encoding/json"
)

// Provider is the boundary to the structured generation service.
// Each Generate call performs exactly one outbound request; results are
// never cached, so repeated calls may legitimately produce different
// content.
type Provider interface {
	// Generate sends a prompt to the model and returns its output.
	// When the request carries a Schema, the provider asks the model for
	// schema-conforming JSON and validates the response against it before
	// returning. A response that cannot be validated is an error, never a
	// partially trusted value.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and global constraints.
	System string

	// Messages is the conversation. Content generation in SkillPath is
	// single-turn, so this usually holds one user message.
	Messages []Message

	// Schema is the structural contract the response must satisfy.
	// When set, the provider uses its native structured-output mechanism
	// and the response Content is the validated JSON. When nil, Content is
	// the raw text wrapped as a JSON string.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema declares the JSON structure an artifact must have before it is
// accepted. The domain packages (pathgen, coursegen, quizgen) each export
// the schema governing their artifact kind.
type Schema struct {
	// Name identifies this schema. Kebab-case, e.g. "learning-path".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. Schema-validated JSON when the
	// request carried a Schema.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

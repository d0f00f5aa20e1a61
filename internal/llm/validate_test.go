package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func moduleTestSchema() *Schema {
	return &Schema{
		Name:        "test-module",
		Description: "A test lesson module",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"type": map[string]any{
					"type": "string",
					"enum": []any{"video", "quiz", "article", "assignment"},
				},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 4,
					"maxItems": 4,
				},
			},
			"required": []any{"title", "type"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"title":"Intro to Welding","type":"video"}`)
	if err := validateResponse(moduleTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"title":"Intro to Welding"}`)
	err := validateResponse(moduleTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"title":"Intro","type":"podcast"}`)
	err := validateResponse(moduleTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for enum violation")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_ArrayLength(t *testing.T) {
	tooFew := json.RawMessage(`{"title":"Quiz","type":"quiz","options":["a","b","c"]}`)
	if err := validateResponse(moduleTestSchema(), tooFew); err == nil {
		t.Fatal("expected error for 3-element options array")
	}

	tooMany := json.RawMessage(`{"title":"Quiz","type":"quiz","options":["a","b","c","d","e"]}`)
	if err := validateResponse(moduleTestSchema(), tooMany); err == nil {
		t.Fatal("expected error for 5-element options array")
	}

	exact := json.RawMessage(`{"title":"Quiz","type":"quiz","options":["a","b","c","d"]}`)
	if err := validateResponse(moduleTestSchema(), exact); err != nil {
		t.Fatalf("expected no error for 4-element options array, got: %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(moduleTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

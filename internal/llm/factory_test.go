package llm

import (
	"errors"
	"testing"
)

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(t.Context(), cfg, nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("expected model ID 'mock', got %q", p.ModelID())
	}
}

func TestNewProvider_MissingCredential(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "gemini"
	cfg.Gemini.APIKey = ""

	_, err := NewProvider(t.Context(), cfg, nil)
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
	var credErr *ErrMissingCredential
	if !errors.As(err, &credErr) {
		t.Fatalf("expected ErrMissingCredential, got: %T", err)
	}
	if credErr.Provider != "gemini" {
		t.Errorf("expected provider 'gemini', got %q", credErr.Provider)
	}
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "oracle"

	if _, err := NewProvider(t.Context(), cfg, nil); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

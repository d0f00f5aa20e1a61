package pathgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/skillpath/internal/llm"
	"github.com/abhisek/skillpath/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	st, err := store.Open(dsn)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func generatedPathJSON() json.RawMessage {
	out := pathOutput{Courses: []courseOutput{
		{Title: "Web Development Bootcamp", Description: "Full-stack basics.", Category: "IT", Level: "NSQF Level 5", Duration: "6 Months"},
		{Title: "Data Entry Operator", Description: "Office productivity.", Category: "IT", Level: "NSQF Level 4", Duration: "2 Months"},
		{Title: "Spoken English", Description: "Workplace communication.", Category: "Soft Skills", Level: "NSQF Level 3", Duration: "1 Month"},
		{Title: "Electrician Fundamentals", Description: "Wiring and safety.", Category: "Construction", Level: "NSQF Level 4", Duration: "4 Months"},
		{Title: "Retail Sales Associate", Description: "Customer handling.", Category: "Retail", Level: "NSQF Level 4", Duration: "2 Months"},
	}}
	raw, _ := json.Marshal(out)
	return raw
}

func TestGenerateLearningPath_Generated(t *testing.T) {
	st := openTestStore(t)
	provider := llm.NewMockProvider(llm.MockResponse{Content: generatedPathJSON()})
	svc := NewService(provider, st.Courses(), DefaultConfig(), zap.NewNop())

	res, err := svc.GenerateLearningPath(t.Context(), "user-1", &store.Profile{FullName: "Ravi"})
	if err != nil {
		t.Fatalf("generate path: %v", err)
	}
	if res.Origin != store.OriginGenerated {
		t.Errorf("origin = %q, want %q", res.Origin, store.OriginGenerated)
	}
	if len(res.Courses) != 5 {
		t.Fatalf("got %d courses, want 5", len(res.Courses))
	}
	for _, c := range res.Courses {
		if c.ID == "" || c.UserID != "user-1" {
			t.Errorf("course %q not linked to user: id=%q user=%q", c.Title, c.ID, c.UserID)
		}
		if c.Rating != 4.5 {
			t.Errorf("course %q rating = %v, want default 4.5", c.Title, c.Rating)
		}
		if c.EnrolledCount < 0 || c.EnrolledCount >= 1000 {
			t.Errorf("course %q enrolled count %d outside [0, 1000)", c.Title, c.EnrolledCount)
		}
	}

	persisted, err := st.Courses().ByUser(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("list courses: %v", err)
	}
	if len(persisted) != 5 {
		t.Errorf("persisted %d courses, want 5", len(persisted))
	}
}

func TestGenerateLearningPath_NilProfileUsesFallbackWithoutCall(t *testing.T) {
	st := openTestStore(t)
	provider := llm.NewMockProvider()
	svc := NewService(provider, st.Courses(), DefaultConfig(), zap.NewNop())

	res, err := svc.GenerateLearningPath(t.Context(), "user-2", nil)
	if err != nil {
		t.Fatalf("generate path: %v", err)
	}
	if res.Origin != store.OriginFallback {
		t.Errorf("origin = %q, want %q", res.Origin, store.OriginFallback)
	}
	if provider.CallCount() != 0 {
		t.Errorf("provider called %d times without a profile, want 0", provider.CallCount())
	}
	if len(res.Courses) != 5 {
		t.Errorf("got %d fallback courses, want 5", len(res.Courses))
	}
	// Curated courses keep their own ratings and enrollment numbers.
	if res.Courses[0].Title != "Advanced React Native" || res.Courses[0].Rating != 4.9 {
		t.Errorf("unexpected first fallback course: %+v", res.Courses[0])
	}
}

func TestGenerateLearningPath_GenerationFailureFallsBack(t *testing.T) {
	st := openTestStore(t)
	provider := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("timeout")},
	})
	svc := NewService(provider, st.Courses(), DefaultConfig(), zap.NewNop())

	res, err := svc.GenerateLearningPath(t.Context(), "user-3", &store.Profile{})
	if err != nil {
		t.Fatalf("expected silent fallback, got: %v", err)
	}
	if res.Origin != store.OriginFallback {
		t.Errorf("origin = %q, want %q", res.Origin, store.OriginFallback)
	}
	for _, c := range res.Courses {
		if c.Origin != store.OriginFallback {
			t.Errorf("course %q origin = %q, want %q", c.Title, c.Origin, store.OriginFallback)
		}
	}
}

func TestGenerateLearningPath_MalformedResponseFallsBack(t *testing.T) {
	st := openTestStore(t)
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"courses": "not an array"}`),
	})
	svc := NewService(provider, st.Courses(), DefaultConfig(), zap.NewNop())

	res, err := svc.GenerateLearningPath(t.Context(), "user-4", &store.Profile{})
	if err != nil {
		t.Fatalf("expected silent fallback, got: %v", err)
	}
	if res.Origin != store.OriginFallback {
		t.Errorf("origin = %q, want %q", res.Origin, store.OriginFallback)
	}
}

func TestGenerateLearningPath_RequestShape(t *testing.T) {
	st := openTestStore(t)
	provider := llm.NewMockProvider(llm.MockResponse{Content: generatedPathJSON()})
	svc := NewService(provider, st.Courses(), DefaultConfig(), zap.NewNop())

	if _, err := svc.GenerateLearningPath(t.Context(), "user-5", &store.Profile{FullName: "Asha"}); err != nil {
		t.Fatalf("generate path: %v", err)
	}

	if len(provider.Calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(provider.Calls))
	}
	req := provider.Calls[0]
	if req.Schema != LearningPathSchema {
		t.Error("request missing learning path schema")
	}
	if req.System == "" {
		t.Error("request missing system prompt")
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Errorf("unexpected messages: %+v", req.Messages)
	}
}

// Package pathgen generates personalized learning paths. A path is a batch
// of 5-7 recommended courses tailored to a user's profile, persisted
// atomically so the user never sees a half-written recommendation list.
package pathgen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/skillpath/internal/llm"
	"github.com/abhisek/skillpath/internal/store"
)

// Service generates and persists learning paths.
type Service struct {
	provider llm.Provider
	courses  store.CourseRepo
	cfg      Config
	log      *zap.Logger
}

// NewService creates a path generation service.
func NewService(provider llm.Provider, courses store.CourseRepo, cfg Config, log *zap.Logger) *Service {
	return &Service{provider: provider, courses: courses, cfg: cfg, log: log}
}

// Result is a persisted learning path. Origin records which branch produced
// it: store.OriginGenerated or store.OriginFallback.
type Result struct {
	Courses []*store.Course
	Origin  string
}

type pathOutput struct {
	Courses []courseOutput `json:"courses"`
}

type courseOutput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	Duration    string `json:"duration"`
}

// GenerateLearningPath produces a personalized path for the user and
// persists it. Generation failures never surface to the caller: the curated
// fallback path is stored instead. Persistence failures do surface, since a
// path that was not written is not a path.
func (s *Service) GenerateLearningPath(ctx context.Context, userID string, profile *store.Profile) (*Result, error) {
	courses, origin := s.generateOrFallback(ctx, profile)

	for _, c := range courses {
		c.ID = uuid.NewString()
		c.UserID = userID
		c.Origin = origin
		if c.Rating == 0 {
			c.Rating = 4.5
		}
		if c.EnrolledCount == 0 {
			c.EnrolledCount = rand.IntN(1000)
		}
	}

	if err := s.courses.CreateBatch(ctx, courses); err != nil {
		return nil, fmt.Errorf("persist learning path: %w", err)
	}

	s.log.Info("learning path persisted",
		zap.String("user_id", userID),
		zap.String("origin", origin),
		zap.Int("courses", len(courses)))

	return &Result{Courses: courses, Origin: origin}, nil
}

func (s *Service) generateOrFallback(ctx context.Context, profile *store.Profile) ([]*store.Course, string) {
	if profile == nil {
		s.log.Info("no profile on record, using curated path")
		return fallbackCourses(), store.OriginFallback
	}

	courses, err := s.generate(ctx, profile)
	if err != nil {
		s.log.Warn("path generation failed, using curated path", zap.Error(err))
		return fallbackCourses(), store.OriginFallback
	}
	return courses, store.OriginGenerated
}

func (s *Service) generate(ctx context.Context, profile *store.Profile) ([]*store.Course, error) {
	ctx = llm.WithPurpose(ctx, "learning-path")

	req := llm.Request{
		System: pathSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPathUserMessage(profile)},
		},
		Schema:      LearningPathSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("path generation: %w", err)
	}

	var out pathOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse path response: %w", err)
	}

	courses := make([]*store.Course, 0, len(out.Courses))
	for _, c := range out.Courses {
		courses = append(courses, &store.Course{
			Title:       c.Title,
			Description: c.Description,
			Category:    c.Category,
			Level:       c.Level,
			Duration:    c.Duration,
		})
	}
	return courses, nil
}

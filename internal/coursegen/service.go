// Package coursegen generates a course's curriculum: an ordered batch of
// 5-8 modules, with video modules enriched by a real video lookup before
// persistence. Generation is lazy and guarded so a course is filled at most
// once.
package coursegen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/skillpath/internal/genlock"
	"github.com/abhisek/skillpath/internal/llm"
	"github.com/abhisek/skillpath/internal/store"
	"github.com/abhisek/skillpath/internal/videosearch"
)

// Service generates, enriches and persists course curricula.
type Service struct {
	provider llm.Provider
	courses  store.CourseRepo
	videos   videosearch.Searcher
	locks    *genlock.Registry
	cfg      Config
	log      *zap.Logger
}

// NewService creates a curriculum generation service.
func NewService(provider llm.Provider, courses store.CourseRepo, videos videosearch.Searcher, locks *genlock.Registry, cfg Config, log *zap.Logger) *Service {
	return &Service{
		provider: provider,
		courses:  courses,
		videos:   videos,
		locks:    locks,
		cfg:      cfg,
		log:      log,
	}
}

type contentOutput struct {
	Modules []moduleOutput `json:"modules"`
}

type moduleOutput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Type        string `json:"type"`
	Content     string `json:"content"`
}

// GenerateCourseContent fills the course with a curriculum. Invoking it on
// a course that already has modules returns the existing modules untouched.
// A concurrent trigger for the same course returns genlock.ErrInFlight.
// Generation failure is absorbed into the fixed fallback curriculum; only a
// failed write surfaces.
func (s *Service) GenerateCourseContent(ctx context.Context, course *store.Course, profile *store.Profile) ([]*store.Module, error) {
	existing, err := s.courses.HasModules(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("check modules: %w", err)
	}
	if existing {
		return s.courses.ModulesByCourse(ctx, course.ID)
	}

	if !s.locks.TryAcquire(course.ID) {
		return nil, genlock.ErrInFlight
	}
	defer s.locks.Release(course.ID)

	modules, err := s.generate(ctx, course, profile)
	if err != nil {
		s.log.Warn("curriculum generation failed, using fixed fallback",
			zap.String("course_id", course.ID),
			zap.Error(err))
		modules = fallbackModules()
	}

	s.enrichVideos(ctx, course, modules)

	for i, m := range modules {
		m.ID = uuid.NewString()
		m.CourseID = course.ID
		m.Order = i
	}

	if err := s.courses.ReplaceModules(ctx, course.ID, modules); err != nil {
		return nil, fmt.Errorf("persist curriculum: %w", err)
	}

	s.log.Info("curriculum persisted",
		zap.String("course_id", course.ID),
		zap.Int("modules", len(modules)))

	return modules, nil
}

func (s *Service) generate(ctx context.Context, course *store.Course, profile *store.Profile) ([]*store.Module, error) {
	ctx = llm.WithPurpose(ctx, "course-content")

	req := llm.Request{
		System: contentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildContentUserMessage(course.Title, profile)},
		},
		Schema:      CourseContentSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("curriculum generation: %w", err)
	}

	var out contentOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse curriculum response: %w", err)
	}

	modules := make([]*store.Module, 0, len(out.Modules))
	for _, m := range out.Modules {
		modules = append(modules, &store.Module{
			Title:       m.Title,
			Description: m.Description,
			Duration:    m.Duration,
			Type:        m.Type,
			Content:     m.Content,
		})
	}
	return modules, nil
}

// enrichVideos resolves each video module's content to a real video link.
// Lookups run concurrently; a failed or empty lookup keeps the generated
// placeholder. The slice order is never changed by enrichment.
func (s *Service) enrichVideos(ctx context.Context, course *store.Course, modules []*store.Module) {
	g, gctx := errgroup.WithContext(ctx)

	for _, m := range modules {
		if m.Type != store.ModuleVideo {
			continue
		}
		g.Go(func() error {
			query := fmt.Sprintf("%s %s tutorial", course.Title, m.Title)
			url, found, err := s.videos.Search(gctx, query)
			if err != nil {
				s.log.Debug("video lookup failed, keeping placeholder",
					zap.String("query", query),
					zap.Error(err))
				return nil
			}
			if found {
				m.Content = url
			}
			return nil
		})
	}

	// Lookup errors are absorbed above, so Wait cannot fail.
	_ = g.Wait()
}

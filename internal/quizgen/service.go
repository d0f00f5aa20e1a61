// Package quizgen generates module quizzes lazily: a quiz is created the
// first time a quiz-typed module is opened and never regenerated. Unlike
// curriculum generation there is no fallback quiz; a failed generation
// surfaces to the caller, who may simply try again.
package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/abhisek/skillpath/internal/genlock"
	"github.com/abhisek/skillpath/internal/llm"
	"github.com/abhisek/skillpath/internal/store"
)

// ErrNotQuizModule indicates quiz generation was requested for a module
// that is not quiz-typed.
var ErrNotQuizModule = errors.New("module is not a quiz module")

// Service generates and persists module quizzes.
type Service struct {
	provider llm.Provider
	quizzes  store.QuizRepo
	locks    *genlock.Registry
	cfg      Config
	log      *zap.Logger
}

// NewService creates a quiz generation service.
func NewService(provider llm.Provider, quizzes store.QuizRepo, locks *genlock.Registry, cfg Config, log *zap.Logger) *Service {
	return &Service{provider: provider, quizzes: quizzes, locks: locks, cfg: cfg, log: log}
}

type quizOutput struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []questionOutput `json:"questions"`
}

type questionOutput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// GenerateQuiz creates the quiz for a quiz-typed module. If a quiz already
// exists it is returned untouched. A concurrent trigger for the same module
// returns genlock.ErrInFlight. Generation failures surface to the caller.
func (s *Service) GenerateQuiz(ctx context.Context, module *store.Module, course *store.Course) (*store.Quiz, error) {
	if module.Type != store.ModuleQuiz {
		return nil, ErrNotQuizModule
	}

	exists, err := s.quizzes.ExistsForModule(ctx, module.ID)
	if err != nil {
		return nil, fmt.Errorf("check quiz: %w", err)
	}
	if exists {
		return s.quizzes.ByModule(ctx, module.ID)
	}

	if !s.locks.TryAcquire(module.ID) {
		return nil, genlock.ErrInFlight
	}
	defer s.locks.Release(module.ID)

	out, err := s.generate(ctx, module, course)
	if err != nil {
		return nil, err
	}

	quiz := &store.Quiz{
		ID:          uuid.NewString(),
		ModuleID:    module.ID,
		Title:       out.Title,
		Description: out.Description,
	}
	questions := make([]*store.Question, 0, len(out.Questions))
	for i, q := range out.Questions {
		questions = append(questions, &store.Question{
			ID:            uuid.NewString(),
			Order:         i,
			Text:          q.Question,
			Options:       datatypes.NewJSONSlice(q.Options),
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	if err := s.quizzes.CreateWithQuestions(ctx, quiz, questions); err != nil {
		return nil, fmt.Errorf("persist quiz: %w", err)
	}

	s.log.Info("quiz persisted",
		zap.String("module_id", module.ID),
		zap.Int("questions", len(questions)))

	return s.quizzes.ByModule(ctx, module.ID)
}

func (s *Service) generate(ctx context.Context, module *store.Module, course *store.Course) (*quizOutput, error) {
	ctx = llm.WithPurpose(ctx, "quiz")

	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizUserMessage(module.Title, course.Title)},
		},
		Schema:      QuizSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}
	if err := validateQuiz(&out); err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}
	return &out, nil
}

// Package app wires configuration, storage, the generation provider and
// the domain services into one container the CLI commands share.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/skillpath/internal/config"
	"github.com/abhisek/skillpath/internal/coursegen"
	"github.com/abhisek/skillpath/internal/enroll"
	"github.com/abhisek/skillpath/internal/genlock"
	"github.com/abhisek/skillpath/internal/llm"
	"github.com/abhisek/skillpath/internal/pathgen"
	"github.com/abhisek/skillpath/internal/quizgen"
	"github.com/abhisek/skillpath/internal/store"
	"github.com/abhisek/skillpath/internal/videosearch"
)

// App holds the assembled application.
type App struct {
	Config   *config.Config
	Log      *zap.Logger
	Store    *store.Store
	Provider llm.Provider

	Paths   *pathgen.Service
	Content *coursegen.Service
	Quizzes *quizgen.Service
	Enroll  *enroll.Service
}

// New assembles the application from config. A missing generation
// credential is not fatal: the provider is replaced by one that always
// fails, so path and curriculum generation degrade to their fallbacks.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger, dbPath string) (*App, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProvider(ctx, cfg.LLMConfig(), log)
	if err != nil {
		var missing *llm.ErrMissingCredential
		if !errors.As(err, &missing) {
			st.Close()
			return nil, fmt.Errorf("build generation provider: %w", err)
		}
		log.Warn("no generation credential configured, fallback content only", zap.Error(err))
		provider = llm.NewUnavailableProvider(err)
	}

	videos, err := videosearch.NewYouTubeSearcher(ctx, cfg.YouTube.APIKey)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("build video searcher: %w", err)
	}

	locks := genlock.NewRegistry()

	return &App{
		Config:   cfg,
		Log:      log,
		Store:    st,
		Provider: provider,
		Paths:    pathgen.NewService(provider, st.Courses(), pathgen.DefaultConfig(), log),
		Content:  coursegen.NewService(provider, st.Courses(), videos, locks, coursegen.DefaultConfig(), log),
		Quizzes:  quizgen.NewService(provider, st.Quizzes(), locks, quizgen.DefaultConfig(), log),
		Enroll:   enroll.NewService(st.Enrollments(), st.Courses(), log),
	}, nil
}

// Close releases the app's resources.
func (a *App) Close() error {
	return a.Store.Close()
}

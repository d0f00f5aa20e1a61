package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// QuizRepo persists quizzes and their questions.
type QuizRepo interface {
	// CreateWithQuestions inserts the quiz and its ordered questions in one
	// transaction. A quiz already existing for the module reports
	// ErrAlreadyExists and persists nothing.
	CreateWithQuestions(ctx context.Context, quiz *Quiz, questions []*Question) error

	// ByModule returns the quiz linked to the module with its questions
	// ordered by sequence index, or ErrNotFound.
	ByModule(ctx context.Context, moduleID string) (*Quiz, error)

	// ExistsForModule reports whether the module already has a quiz.
	ExistsForModule(ctx context.Context, moduleID string) (bool, error)
}

type quizRepo struct {
	db *gorm.DB
}

func (r *quizRepo) CreateWithQuestions(ctx context.Context, quiz *Quiz, questions []*Question) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		for _, q := range questions {
			q.QuizID = quiz.ID
			if err := tx.Create(q).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("create quiz: %w", err)
	}
	return nil
}

func (r *quizRepo) ByModule(ctx context.Context, moduleID string) (*Quiz, error) {
	var quiz Quiz
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&quiz, "module_id = ?", moduleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	return &quiz, nil
}

func (r *quizRepo) ExistsForModule(ctx context.Context, moduleID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Quiz{}).
		Where("module_id = ?", moduleID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count quizzes: %w", err)
	}
	return count > 0, nil
}

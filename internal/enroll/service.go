// Package enroll links users to courses. Uniqueness of (user, course) is
// enforced twice: a pre-check for the friendly error, and the store's
// unique index for the race the pre-check cannot close.
package enroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/skillpath/internal/store"
)

// Service manages course enrollments.
type Service struct {
	enrollments store.EnrollmentRepo
	courses     store.CourseRepo
	log         *zap.Logger
}

// NewService creates an enrollment service.
func NewService(enrollments store.EnrollmentRepo, courses store.CourseRepo, log *zap.Logger) *Service {
	return &Service{enrollments: enrollments, courses: courses, log: log}
}

// Enroll creates an enrollment for the user in the course, with progress 0
// and active status. Enrolling twice reports store.ErrAlreadyExists and
// leaves the existing record untouched.
func (s *Service) Enroll(ctx context.Context, userID, courseID string) (*store.Enrollment, error) {
	if _, err := s.courses.ByID(ctx, courseID); err != nil {
		return nil, fmt.Errorf("look up course: %w", err)
	}

	exists, err := s.enrollments.Exists(ctx, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("check enrollment: %w", err)
	}
	if exists {
		return nil, store.ErrAlreadyExists
	}

	e := &store.Enrollment{
		ID:           uuid.NewString(),
		UserID:       userID,
		CourseID:     courseID,
		Progress:     0,
		Status:       store.EnrollmentActive,
		LastAccessed: time.Now(),
	}
	if err := s.enrollments.Create(ctx, e); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, store.ErrAlreadyExists
		}
		return nil, fmt.Errorf("persist enrollment: %w", err)
	}

	s.log.Info("enrolled",
		zap.String("user_id", userID),
		zap.String("course_id", courseID))

	return e, nil
}

// List returns the user's enrollments, most recently accessed first.
func (s *Service) List(ctx context.Context, userID string) ([]*store.Enrollment, error) {
	return s.enrollments.ByUser(ctx, userID)
}

// RecordProgress updates an enrollment's progress percentage. Values are
// clamped to [0,100]; reaching 100 marks the enrollment completed.
func (s *Service) RecordProgress(ctx context.Context, enrollmentID string, progress int) error {
	return s.enrollments.UpdateProgress(ctx, enrollmentID, progress)
}

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// EnrollmentRepo persists user-course enrollments.
type EnrollmentRepo interface {
	// Create inserts a new enrollment. A duplicate (user, course) pair
	// reports ErrAlreadyExists without creating a record.
	Create(ctx context.Context, e *Enrollment) error

	// Exists reports whether the user is already enrolled in the course.
	Exists(ctx context.Context, userID, courseID string) (bool, error)

	// ByUser returns the user's enrollments, most recently accessed first.
	ByUser(ctx context.Context, userID string) ([]*Enrollment, error)

	// UpdateProgress sets the enrollment's progress percentage and touches
	// the last-accessed timestamp. Progress is clamped to [0,100]; 100
	// flips the status to completed.
	UpdateProgress(ctx context.Context, id string, progress int) error
}

type enrollmentRepo struct {
	db *gorm.DB
}

func (r *enrollmentRepo) Create(ctx context.Context, e *Enrollment) error {
	err := r.db.WithContext(ctx).Create(e).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

func (r *enrollmentRepo) Exists(ctx context.Context, userID, courseID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count enrollments: %w", err)
	}
	return count > 0, nil
}

func (r *enrollmentRepo) ByUser(ctx context.Context, userID string) ([]*Enrollment, error) {
	var enrollments []*Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_accessed DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

func (r *enrollmentRepo) UpdateProgress(ctx context.Context, id string, progress int) error {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	status := EnrollmentActive
	if progress == 100 {
		status = EnrollmentCompleted
	}

	res := r.db.WithContext(ctx).
		Model(&Enrollment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"progress":      progress,
			"status":        status,
			"last_accessed": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("update progress: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// CourseRepo persists recommended courses and their modules.
type CourseRepo interface {
	// CreateBatch inserts all courses in one transaction. Either every
	// course is persisted or none is.
	CreateBatch(ctx context.Context, courses []*Course) error

	// ByID returns the course with the given id, or ErrNotFound.
	ByID(ctx context.Context, id string) (*Course, error)

	// ByUser returns all courses linked to the user, newest first.
	ByUser(ctx context.Context, userID string) ([]*Course, error)

	// HasModules reports whether the course already has a curriculum.
	HasModules(ctx context.Context, courseID string) (bool, error)

	// ReplaceModules writes the course's module list in one transaction,
	// removing any previous modules first.
	ReplaceModules(ctx context.Context, courseID string, modules []*Module) error

	// ModulesByCourse returns the course's modules ordered by their
	// sequence index.
	ModulesByCourse(ctx context.Context, courseID string) ([]*Module, error)

	// ModuleByID returns a single module, or ErrNotFound.
	ModuleByID(ctx context.Context, id string) (*Module, error)
}

type courseRepo struct {
	db *gorm.DB
}

func (r *courseRepo) CreateBatch(ctx context.Context, courses []*Course) error {
	if len(courses) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range courses {
			if err := tx.Create(c).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("create course batch: %w", err)
	}
	return nil
}

func (r *courseRepo) ByID(ctx context.Context, id string) (*Course, error) {
	var c Course
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load course: %w", err)
	}
	return &c, nil
}

func (r *courseRepo) ByUser(ctx context.Context, userID string) ([]*Course, error) {
	var courses []*Course
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (r *courseRepo) HasModules(ctx context.Context, courseID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Module{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count modules: %w", err)
	}
	return count > 0, nil
}

func (r *courseRepo) ReplaceModules(ctx context.Context, courseID string, modules []*Module) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", courseID).Delete(&Module{}).Error; err != nil {
			return err
		}
		for _, m := range modules {
			m.CourseID = courseID
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace modules: %w", err)
	}
	return nil
}

func (r *courseRepo) ModulesByCourse(ctx context.Context, courseID string) ([]*Module, error) {
	var modules []*Module
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("sort_order ASC").
		Find(&modules).Error
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	return modules, nil
}

func (r *courseRepo) ModuleByID(ctx context.Context, id string) (*Module, error) {
	var m Module
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load module: %w", err)
	}
	return &m, nil
}

package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ProfileRepo persists onboarding profiles.
type ProfileRepo interface {
	// Create inserts the profile. A second profile for the same user
	// reports ErrAlreadyExists.
	Create(ctx context.Context, p *Profile) error

	// ByUser returns the user's profile, or ErrNotFound.
	ByUser(ctx context.Context, userID string) (*Profile, error)
}

type profileRepo struct {
	db *gorm.DB
}

func (r *profileRepo) Create(ctx context.Context, p *Profile) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *profileRepo) ByUser(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &p, nil
}

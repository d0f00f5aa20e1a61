package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepo persists user accounts.
type UserRepo interface {
	// GetOrCreate returns the user with the given email, creating the
	// account on first use.
	GetOrCreate(ctx context.Context, email string) (*User, error)

	// ByID returns the user with the given id, or ErrNotFound.
	ByID(ctx context.Context, id string) (*User, error)
}

type userRepo struct {
	db *gorm.DB
}

func (r *userRepo) GetOrCreate(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if err == nil {
		return &u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load user: %w", err)
	}

	u = User{ID: uuid.NewString(), Email: email}
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

func (r *userRepo) ByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	return &u, nil
}

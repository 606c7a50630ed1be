package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/picbay/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint on email or
	// username is violated. The store is the sole arbiter of uniqueness
	// under concurrent registrations.
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository defines the persistence operations for user records.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}

package repository

import (
	"context"
	"errors"

	"github.com/taskhive/taskhive/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no document matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey is returned when an insert violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// UserRepository defines the interface for user-related store operations.
// Username and email lookups are exact matches; the store enforces unique
// indexes on both fields so a concurrent insert race surfaces as
// ErrDuplicateKey rather than a silent duplicate.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

package repository

import (
	"context"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
)

// UserRepository defines user-related database operations.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateProfile applies the non-nil fields. When email is set the
	// verification timestamp is cleared in the same statement; a collision
	// with another user's email yields ErrDuplicateEmail.
	UpdateProfile(ctx context.Context, id string, name, email *string) error

	UpdatePassword(ctx context.Context, id, passwordHash string) error

	// MarkVerified stamps the user verified and deletes the consumed
	// verification token in one transaction.
	MarkVerified(ctx context.Context, userID, token string) error
}

package repository

import (
	"context"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
)

// TokenRepository stores single-use email verification tokens.
type TokenRepository interface {
	// Replace deletes any existing tokens for t.Identifier and inserts t,
	// atomically. Keeps the single-active-token-per-email invariant.
	Replace(ctx context.Context, t *entity.VerificationToken) error

	GetByToken(ctx context.Context, token string) (*entity.VerificationToken, error)
	Delete(ctx context.Context, token string) error
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
	"github.com/orderdeck/orderdeck/internal/domain/repository"
)

type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

// Replace swaps any outstanding tokens for the identifier with the new one.
func (r *TokenRepository) Replace(ctx context.Context, t *entity.VerificationToken) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			DELETE FROM verification_tokens WHERE identifier = $1
		`, t.Identifier); err != nil {
			return translate(err)
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO verification_tokens (identifier, token, expires)
			VALUES ($1, $2, $3)
		`, t.Identifier, t.Token, t.Expires)
		return translate(err)
	})
}

func (r *TokenRepository) GetByToken(ctx context.Context, token string) (*entity.VerificationToken, error) {
	t := &entity.VerificationToken{}
	row := r.pool.QueryRow(ctx, `
		SELECT identifier, token, expires
		FROM verification_tokens
		WHERE token = $1
	`, token)
	if err := row.Scan(&t.Identifier, &t.Token, &t.Expires); err != nil {
		return nil, translate(err)
	}
	return t, nil
}

func (r *TokenRepository) Delete(ctx context.Context, token string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM verification_tokens WHERE token = $1`, token)
	return translate(err)
}

var _ repository.TokenRepository = (*TokenRepository)(nil)

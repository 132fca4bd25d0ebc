package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
	"github.com/orderdeck/orderdeck/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, email, password_hash, name, email_verified, account_id, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.EmailVerified,
		&u.AccountID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email)
	return scanUser(row)
}

// UpdateProfile changes name and/or email. A new email clears email_verified
// in the same statement so the user must re-verify.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, name, email *string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET name = COALESCE($1, name),
		    email = COALESCE($2, email),
		    email_verified = CASE
		        WHEN $2::text IS NOT NULL AND $2 <> email THEN NULL
		        ELSE email_verified
		    END,
		    updated_at = now()
		WHERE id = $3
	`, name, email, id)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET password_hash = $1, updated_at = now()
		WHERE id = $2
	`, passwordHash, id)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// MarkVerified stamps the user and burns the token in one transaction so a
// crash can never leave a consumed token with an unverified user.
func (r *UserRepository) MarkVerified(ctx context.Context, userID, token string) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		res, err := tx.Exec(ctx, `
			UPDATE users
			SET email_verified = now(), updated_at = now()
			WHERE id = $1
		`, userID)
		if err != nil {
			return translate(err)
		}
		if res.RowsAffected() == 0 {
			return repository.ErrNotFound
		}
		_, err = tx.Exec(ctx, `DELETE FROM verification_tokens WHERE token = $1`, token)
		return translate(err)
	})
}

var _ repository.UserRepository = (*UserRepository)(nil)

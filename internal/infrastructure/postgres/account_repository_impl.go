package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
	"github.com/orderdeck/orderdeck/internal/domain/repository"
)

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// CreateWithOwner is the registration transaction: user, account, back-link,
// verification token — all or nothing. The unique index on users.email is the
// backstop for two racing registrations; the loser surfaces ErrDuplicateEmail.
func (r *AccountRepository) CreateWithOwner(ctx context.Context, u *entity.User, accountName string, tok *entity.VerificationToken) (*entity.Account, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, u.Email).Scan(&exists); err != nil {
		return nil, translate(err)
	}
	if exists {
		return nil, repository.ErrDuplicateEmail
	}

	acc := &entity.Account{Name: &accountName}
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO users (name, email, password_hash)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at
		`, u.Name, u.Email, u.Password)
		if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return translate(err)
		}

		row = tx.QueryRow(ctx, `
			INSERT INTO accounts (name, owner_id)
			VALUES ($1, $2)
			RETURNING id, created_at, updated_at
		`, accountName, u.ID)
		if err := row.Scan(&acc.ID, &acc.CreatedAt, &acc.UpdatedAt); err != nil {
			return translate(err)
		}
		acc.OwnerID = u.ID

		if _, err := tx.Exec(ctx, `
			UPDATE users SET account_id = $1, updated_at = now() WHERE id = $2
		`, acc.ID, u.ID); err != nil {
			return translate(err)
		}
		u.AccountID = &acc.ID

		_, err := tx.Exec(ctx, `
			INSERT INTO verification_tokens (identifier, token, expires)
			VALUES ($1, $2, $3)
		`, tok.Identifier, tok.Token, tok.Expires)
		return translate(err)
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	a := &entity.Account{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, owner_id, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`, id)
	if err := row.Scan(&a.ID, &a.Name, &a.OwnerID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (r *AccountRepository) Members(ctx context.Context, accountID string) ([]entity.Member, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, email_verified
		FROM users
		WHERE account_id = $1
		ORDER BY created_at
	`, accountID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	members := make([]entity.Member, 0, 4)
	for rows.Next() {
		var m entity.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.EmailVerified); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *AccountRepository) UpdateName(ctx context.Context, id, name string) (*entity.Account, error) {
	a := &entity.Account{}
	row := r.pool.QueryRow(ctx, `
		UPDATE accounts
		SET name = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, name, owner_id, created_at, updated_at
	`, name, id)
	if err := row.Scan(&a.ID, &a.Name, &a.OwnerID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return a, nil
}

// Delete cascades in child-to-parent order. The owner row goes last: the
// account still holds an FK to it until the account row itself is gone.
func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		var ownerID string
		if err := tx.QueryRow(ctx, `SELECT owner_id FROM accounts WHERE id = $1`, id).Scan(&ownerID); err != nil {
			return translate(err)
		}
		if _, err := tx.Exec(ctx, `
			DELETE FROM order_items
			WHERE order_id IN (SELECT id FROM orders WHERE account_id = $1)
		`, id); err != nil {
			return translate(err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM orders WHERE account_id = $1`, id); err != nil {
			return translate(err)
		}
		if _, err := tx.Exec(ctx, `
			DELETE FROM users WHERE account_id = $1 AND id <> $2
		`, id, ownerID); err != nil {
			return translate(err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id); err != nil {
			return translate(err)
		}
		_, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, ownerID)
		return translate(err)
	})
}

var _ repository.AccountRepository = (*AccountRepository)(nil)

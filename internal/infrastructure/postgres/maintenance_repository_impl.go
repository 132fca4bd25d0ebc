package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orderdeck/orderdeck/internal/domain/repository"
)

type MaintenanceRepository struct {
	pool *pgxpool.Pool
}

func NewMaintenanceRepository(pool *pgxpool.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{pool: pool}
}

// Child-to-parent wipe order. users.account_id is ON DELETE SET NULL, so
// accounts can go before their members.
var purgeStatements = []string{
	`DELETE FROM verification_tokens`,
	`DELETE FROM order_items`,
	`DELETE FROM orders`,
	`DELETE FROM accounts`,
	`DELETE FROM users`,
}

func (r *MaintenanceRepository) PurgeAll(ctx context.Context) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		for _, stmt := range purgeStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return translate(err)
			}
		}
		return nil
	})
}

func (r *MaintenanceRepository) PurgeExcept(ctx context.Context, userID, accountID string) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM verification_tokens`); err != nil {
			return translate(err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM order_items`); err != nil {
			return translate(err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM orders`); err != nil {
			return translate(err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM accounts WHERE id <> $1`, accountID); err != nil {
			return translate(err)
		}
		_, err := tx.Exec(ctx, `DELETE FROM users WHERE id <> $1`, userID)
		return translate(err)
	})
}

var _ repository.MaintenanceRepository = (*MaintenanceRepository)(nil)

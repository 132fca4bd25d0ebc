package repository

import "context"

// MaintenanceRepository backs the development reset endpoint. Both operations
// delete child-to-parent inside a single transaction.
type MaintenanceRepository interface {
	// PurgeAll wipes verification tokens, order items, orders, accounts and
	// users.
	PurgeAll(ctx context.Context) error

	// PurgeExcept wipes the same tables but preserves the given user and
	// account (and nothing else).
	PurgeExcept(ctx context.Context, userID, accountID string) error
}

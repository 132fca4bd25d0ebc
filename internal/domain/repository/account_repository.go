package repository

import (
	"context"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
)

// AccountRepository owns the account lifecycle, including the composite
// registration and deletion transactions.
type AccountRepository interface {
	// CreateWithOwner runs the registration sequence as one transaction:
	// insert the (unverified, account-less) user, insert the account owned
	// by it, link user.account_id back, and store the verification token.
	// The entities are populated with generated ids on success. An email
	// collision — pre-existing or raced — yields ErrDuplicateEmail.
	CreateWithOwner(ctx context.Context, u *entity.User, accountName string, tok *entity.VerificationToken) (*entity.Account, error)

	GetByID(ctx context.Context, id string) (*entity.Account, error)
	Members(ctx context.Context, accountID string) ([]entity.Member, error)
	UpdateName(ctx context.Context, id, name string) (*entity.Account, error)

	// Delete removes the account and everything it owns in one transaction,
	// child-to-parent: order items, orders, non-owner users, the account,
	// then the owner. A failure at any step leaves the store untouched.
	Delete(ctx context.Context, id string) error
}

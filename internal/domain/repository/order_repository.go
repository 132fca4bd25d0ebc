package repository

import (
	"context"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
)

// OrderFilter narrows List. Zero values mean "no filter".
type OrderFilter struct {
	AccountID string
	Status    entity.OrderStatus
}

// OrderRepository covers CRUD over orders and their line items.
type OrderRepository interface {
	// List returns orders with items, newest first.
	List(ctx context.Context, f OrderFilter) ([]entity.Order, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)

	// Create inserts the order and all its items in one transaction and
	// fills in the generated ids.
	Create(ctx context.Context, o *entity.Order) error

	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error)

	// Delete removes the order and its items.
	Delete(ctx context.Context, id string) error

	// CreateBatch and DeleteByAccount serve the demo seeder.
	CreateBatch(ctx context.Context, orders []entity.Order) error
	DeleteByAccount(ctx context.Context, accountID string) error

	Count(ctx context.Context) (int64, error)
}

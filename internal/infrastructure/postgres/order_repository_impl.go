package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
	"github.com/orderdeck/orderdeck/internal/domain/repository"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

const orderColumns = `id, account_id, customer_name, order_type, status, total, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	o := &entity.Order{}
	if err := row.Scan(&o.ID, &o.AccountID, &o.CustomerName, &o.OrderType, &o.Status,
		&o.Total, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return o, nil
}

func (r *OrderRepository) List(ctx context.Context, f repository.OrderFilter) ([]entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []any{}
	where := ""
	if f.AccountID != "" {
		args = append(args, f.AccountID)
		where = fmt.Sprintf(" WHERE account_id = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		if where == "" {
			where = fmt.Sprintf(" WHERE status = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND status = $%d", len(args))
		}
	}
	query += where + ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	orders := make([]entity.Order, 0, 16)
	index := map[string]int{}
	ids := make([]string, 0, 16)
	for rows.Next() {
		o := entity.Order{Items: []entity.OrderItem{}}
		if err := rows.Scan(&o.ID, &o.AccountID, &o.CustomerName, &o.OrderType, &o.Status,
			&o.Total, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		index[o.ID] = len(orders)
		ids = append(ids, o.ID)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	itemRows, err := r.pool.Query(ctx, `
		SELECT id, order_id, name, price, quantity
		FROM order_items
		WHERE order_id = ANY($1::uuid[])
		ORDER BY id
	`, ids)
	if err != nil {
		return nil, translate(err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it entity.OrderItem
		if err := itemRows.Scan(&it.ID, &it.OrderID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		if i, ok := index[it.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, it)
		}
	}
	return orders, itemRows.Err()
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, `
		SELECT `+orderColumns+` FROM orders WHERE id = $1
	`, id))
	if err != nil {
		return nil, err
	}
	items, err := r.itemsFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *OrderRepository) itemsFor(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, order_id, name, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	items := make([]entity.OrderItem, 0, 4)
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Create inserts the order and all line items atomically.
func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO orders (account_id, customer_name, order_type, status, total)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at
		`, o.AccountID, o.CustomerName, o.OrderType, o.Status, o.Total)
		if err := row.Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return translate(err)
		}
		for i := range o.Items {
			o.Items[i].OrderID = o.ID
			row := tx.QueryRow(ctx, `
				INSERT INTO order_items (order_id, name, price, quantity)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`, o.ID, o.Items[i].Name, o.Items[i].Price, o.Items[i].Quantity)
			if err := row.Scan(&o.Items[i].ID); err != nil {
				return translate(err)
			}
		}
		return nil
	})
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, `
		UPDATE orders
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING `+orderColumns+`
	`, status, id))
	if err != nil {
		return nil, err
	}
	items, err := r.itemsFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists); err != nil {
			return translate(err)
		}
		if !exists {
			return repository.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
			return translate(err)
		}
		_, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
		return translate(err)
	})
}

// CreateBatch bulk-inserts seeded orders with their original timestamps. Items
// go in through COPY since the seeder does not need generated item ids back.
func (r *OrderRepository) CreateBatch(ctx context.Context, orders []entity.Order) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		itemRows := make([][]any, 0, len(orders)*2)
		for i := range orders {
			o := &orders[i]
			row := tx.QueryRow(ctx, `
				INSERT INTO orders (account_id, customer_name, order_type, status, total, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $6)
				RETURNING id
			`, o.AccountID, o.CustomerName, o.OrderType, o.Status, o.Total, o.CreatedAt)
			if err := row.Scan(&o.ID); err != nil {
				return translate(err)
			}
			for _, it := range o.Items {
				itemRows = append(itemRows, []any{o.ID, it.Name, it.Price, it.Quantity})
			}
		}
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"order_items"},
			[]string{"order_id", "name", "price", "quantity"},
			pgx.CopyFromRows(itemRows),
		)
		return translate(err)
	})
}

func (r *OrderRepository) DeleteByAccount(ctx context.Context, accountID string) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			DELETE FROM order_items
			WHERE order_id IN (SELECT id FROM orders WHERE account_id = $1)
		`, accountID); err != nil {
			return translate(err)
		}
		_, err := tx.Exec(ctx, `DELETE FROM orders WHERE account_id = $1`, accountID)
		return translate(err)
	})
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n)
	return n, translate(err)
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

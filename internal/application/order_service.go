package application

import (
	"context"
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
	repo "github.com/orderdeck/orderdeck/internal/domain/repository"
)

// OrderService implements order listing and the order lifecycle. Totals are
// always computed server-side from the line items, never taken from input.
type OrderService struct {
	Orders repo.OrderRepository
	Logger *logrus.Logger
}

func NewOrderService(orders repo.OrderRepository, logger *logrus.Logger) *OrderService {
	return &OrderService{Orders: orders, Logger: logger}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// List returns the account's orders, newest first, optionally narrowed to a
// single status.
func (s *OrderService) List(ctx context.Context, accountID, status string) ([]entity.Order, error) {
	if status != "" && !entity.OrderStatus(status).Valid() {
		return nil, invalid("status", "unknown order status")
	}
	return s.Orders.List(ctx, repo.OrderFilter{AccountID: accountID, Status: entity.OrderStatus(status)})
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*entity.Order, error) {
	o, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

type OrderItemInput struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

type CreateOrderInput struct {
	AccountID    string
	CustomerName string
	OrderType    string
	Items        []OrderItemInput
}

// Create validates the input, prices the order and persists it with status
// pending.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*entity.Order, error) {
	if in.CustomerName == "" {
		return nil, invalid("customerName", "must not be empty")
	}
	if !entity.OrderType(in.OrderType).Valid() {
		return nil, invalid("orderType", "must be pickup or delivery")
	}
	if len(in.Items) == 0 {
		return nil, invalid("items", "must contain at least one item")
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	total := 0.0
	for _, it := range in.Items {
		if it.Name == "" {
			return nil, invalid("items.name", "must not be empty")
		}
		if it.Price <= 0 {
			return nil, invalid("items.price", "must be positive")
		}
		if it.Quantity < 1 {
			return nil, invalid("items.quantity", "must be at least 1")
		}
		items = append(items, entity.OrderItem{Name: it.Name, Price: it.Price, Quantity: it.Quantity})
		total += it.Price * float64(it.Quantity)
	}

	order := &entity.Order{
		AccountID:    in.AccountID,
		CustomerName: in.CustomerName,
		OrderType:    entity.OrderType(in.OrderType),
		Status:       entity.StatusPending,
		Total:        round2(total),
		Items:        items,
	}
	if err := s.Orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves the order to any valid status. Transitions are not
// restricted to forward order, so a mis-tap can be undone.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*entity.Order, error) {
	if !entity.OrderStatus(status).Valid() {
		return nil, invalid("status", "unknown order status")
	}
	o, err := s.Orders.UpdateStatus(ctx, orderID, entity.OrderStatus(status))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	err := s.Orders.Delete(ctx, orderID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

// Count reports the total number of orders across all accounts. Used by the
// health probe as a cheap read check.
func (s *OrderService) Count(ctx context.Context) (int64, error) {
	return s.Orders.Count(ctx)
}

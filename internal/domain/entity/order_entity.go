package entity

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

// OrderStatuses lists every valid status in kitchen order.
var OrderStatuses = []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusDelivered}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered:
		return true
	}
	return false
}

type OrderType string

const (
	TypePickup   OrderType = "pickup"
	TypeDelivery OrderType = "delivery"
)

func (t OrderType) Valid() bool {
	return t == TypePickup || t == TypeDelivery
}

// Order is owned by exactly one Account. Total is computed once at creation
// from the item lines and is not recomputed afterwards.
type Order struct {
	ID           string      `json:"id"`
	AccountID    string      `json:"accountId"`
	CustomerName string      `json:"customerName"`
	OrderType    OrderType   `json:"orderType"`
	Status       OrderStatus `json:"status"`
	Total        float64     `json:"total"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	Items        []OrderItem `json:"items"`
}

// OrderItem is a line item; it lives and dies with its parent Order.
type OrderItem struct {
	ID       string  `json:"id"`
	OrderID  string  `json:"-"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

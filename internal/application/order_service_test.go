package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
)

func newOrderFixture(t *testing.T) (*OrderService, *memStore) {
	t.Helper()
	st := newMemStore()
	return NewOrderService(orderRepoFake{st}, testLogger()), st
}

func TestCreateOrderComputesTotal(t *testing.T) {
	svc, _ := newOrderFixture(t)

	o, err := svc.Create(context.Background(), CreateOrderInput{
		AccountID:    "acc-1",
		CustomerName: "Sarah Chen",
		OrderType:    "delivery",
		Items: []OrderItemInput{
			{Name: "Buffalo Wings", Price: 9.76, Quantity: 3},
			{Name: "Soft Drink", Price: 2.99, Quantity: 2},
		},
	})
	require.NoError(t, err)

	// 3*9.76 + 2*2.99 = 35.26, rounded to cents.
	assert.Equal(t, 35.26, o.Total)
	assert.Equal(t, entity.StatusPending, o.Status)
	assert.Equal(t, entity.TypeDelivery, o.OrderType)
	require.Len(t, o.Items, 2)
	assert.NotEmpty(t, o.ID)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _ := newOrderFixture(t)
	ctx := context.Background()
	base := CreateOrderInput{
		AccountID:    "acc-1",
		CustomerName: "Sarah Chen",
		OrderType:    "pickup",
		Items:        []OrderItemInput{{Name: "Side Salad", Price: 3.00, Quantity: 1}},
	}

	cases := []struct {
		name   string
		mutate func(*CreateOrderInput)
	}{
		{"empty customer", func(in *CreateOrderInput) { in.CustomerName = "" }},
		{"bad order type", func(in *CreateOrderInput) { in.OrderType = "drive-thru" }},
		{"no items", func(in *CreateOrderInput) { in.Items = nil }},
		{"zero price", func(in *CreateOrderInput) { in.Items[0].Price = 0 }},
		{"zero quantity", func(in *CreateOrderInput) { in.Items[0].Quantity = 0 }},
		{"unnamed item", func(in *CreateOrderInput) { in.Items[0].Name = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			in.Items = append([]OrderItemInput(nil), base.Items...)
			tc.mutate(&in)
			_, err := svc.Create(ctx, in)
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestListFiltersByStatus(t *testing.T) {
	svc, _ := newOrderFixture(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateOrderInput{
		AccountID: "acc-1", CustomerName: "A", OrderType: "pickup",
		Items: []OrderItemInput{{Name: "Garlic Bread", Price: 5.99, Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateOrderInput{
		AccountID: "acc-1", CustomerName: "B", OrderType: "delivery",
		Items: []OrderItemInput{{Name: "Tiramisu", Price: 6.99, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, a.ID, "ready")
	require.NoError(t, err)

	all, err := svc.List(ctx, "acc-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	ready, err := svc.List(ctx, "acc-1", "ready")
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, a.ID, ready[0].ID)

	_, err = svc.List(ctx, "acc-1", "bogus")
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	// Account scoping.
	none, err := svc.List(ctx, "acc-2", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newOrderFixture(t)
	ctx := context.Background()

	o, err := svc.Create(ctx, CreateOrderInput{
		AccountID: "acc-1", CustomerName: "A", OrderType: "pickup",
		Items: []OrderItemInput{{Name: "Onion Rings", Price: 6.99, Quantity: 1}},
	})
	require.NoError(t, err)

	upd, err := svc.UpdateStatus(ctx, o.ID, "delivered")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, upd.Status)

	// Same status again is accepted, not an error.
	upd, err = svc.UpdateStatus(ctx, o.ID, "delivered")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, upd.Status)

	// Backward movement is allowed.
	upd, err = svc.UpdateStatus(ctx, o.ID, "preparing")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, upd.Status)

	_, err = svc.UpdateStatus(ctx, o.ID, "cancelled")
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = svc.UpdateStatus(ctx, "missing", "ready")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDeleteOrder(t *testing.T) {
	svc, _ := newOrderFixture(t)
	ctx := context.Background()

	o, err := svc.Create(ctx, CreateOrderInput{
		AccountID: "acc-1", CustomerName: "A", OrderType: "pickup",
		Items: []OrderItemInput{{Name: "Breadsticks", Price: 4.99, Quantity: 2}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, o.ID))
	assert.ErrorIs(t, svc.Delete(ctx, o.ID), ErrOrderNotFound)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
)

func newAccountFixture(t *testing.T) (*AccountService, *AuthService, *OrderService, *memStore) {
	t.Helper()
	auth, st, _ := newAuthFixture(t)
	accounts := NewAccountService(accountRepoFake{st}, testLogger())
	orders := NewOrderService(orderRepoFake{st}, testLogger())
	return accounts, auth, orders, st
}

func seedOrder(t *testing.T, orders *OrderService, accountID string) *entity.Order {
	t.Helper()
	o, err := orders.Create(context.Background(), CreateOrderInput{
		AccountID:    accountID,
		CustomerName: "Alex Johnson",
		OrderType:    "pickup",
		Items: []OrderItemInput{
			{Name: "Margherita Pizza", Price: 15.99, Quantity: 2},
		},
	})
	require.NoError(t, err)
	return o
}

func TestAccountGet(t *testing.T) {
	accounts, auth, _, st := newAccountFixture(t)
	reg := registerVerified(t, auth, st, "Mario", "mario@example.com", "secret123")

	detail, err := accounts.Get(context.Background(), reg.Account.ID)
	require.NoError(t, err)
	assert.Equal(t, reg.Account.ID, detail.Account.ID)
	require.Len(t, detail.Members, 1)
	assert.Equal(t, "mario@example.com", detail.Members[0].Email)

	_, err = accounts.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountUpdateName(t *testing.T) {
	accounts, auth, _, st := newAccountFixture(t)
	reg := registerVerified(t, auth, st, "Mario", "mario@example.com", "secret123")

	acc, err := accounts.UpdateName(context.Background(), reg.Account.ID, "Mario Bros Pizzeria")
	require.NoError(t, err)
	require.NotNil(t, acc.Name)
	assert.Equal(t, "Mario Bros Pizzeria", *acc.Name)

	_, err = accounts.UpdateName(context.Background(), reg.Account.ID, "")
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = accounts.UpdateName(context.Background(), "missing", "X")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountDeleteCascades(t *testing.T) {
	accounts, auth, orders, st := newAccountFixture(t)
	ctx := context.Background()

	reg := registerVerified(t, auth, st, "Mario", "mario@example.com", "secret123")
	other := registerVerified(t, auth, st, "Luigi", "luigi@example.com", "secret123")
	seedOrder(t, orders, reg.Account.ID)
	seedOrder(t, orders, other.Account.ID)

	require.NoError(t, accounts.Delete(ctx, reg.Account.ID))

	// The account, its owner and its orders are gone.
	_, err := accounts.Get(ctx, reg.Account.ID)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	_, ok := st.users[reg.User.ID]
	assert.False(t, ok)
	left, err := orders.List(ctx, reg.Account.ID, "")
	require.NoError(t, err)
	assert.Empty(t, left)

	// The unrelated account is intact.
	_, err = accounts.Get(ctx, other.Account.ID)
	assert.NoError(t, err)
	otherOrders, err := orders.List(ctx, other.Account.ID, "")
	require.NoError(t, err)
	assert.Len(t, otherOrders, 1)
}

func TestAccountDeleteAtomicUnderFault(t *testing.T) {
	accounts, auth, orders, st := newAccountFixture(t)
	ctx := context.Background()

	reg := registerVerified(t, auth, st, "Mario", "mario@example.com", "secret123")
	seedOrder(t, orders, reg.Account.ID)
	st.failOn = "Delete"

	require.Error(t, accounts.Delete(ctx, reg.Account.ID))

	// Everything still in place after the failed delete.
	_, ok := st.users[reg.User.ID]
	assert.True(t, ok)
	_, ok = st.accounts[reg.Account.ID]
	assert.True(t, ok)
	remaining, err := orders.List(ctx, reg.Account.ID, "")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestAccountDeleteUnknown(t *testing.T) {
	accounts, _, _, _ := newAccountFixture(t)
	assert.ErrorIs(t, accounts.Delete(context.Background(), "missing"), ErrAccountNotFound)
}

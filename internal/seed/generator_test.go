package seed

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
)

func genAt(seed int64) []entity.Order {
	rng := rand.New(rand.NewSource(seed))
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	return Generate(rng, "acc-test", now)
}

func TestGenerateShape(t *testing.T) {
	orders := genAt(42)

	require.GreaterOrEqual(t, len(orders), Days)
	require.LessOrEqual(t, len(orders), Days*5)

	for _, o := range orders {
		assert.Equal(t, "acc-test", o.AccountID)
		assert.NotEmpty(t, o.CustomerName)
		assert.True(t, o.OrderType.Valid(), "order type %q", o.OrderType)
		assert.True(t, o.Status.Valid(), "status %q", o.Status)

		require.NotEmpty(t, o.Items)
		require.LessOrEqual(t, len(o.Items), 4)
		sum := 0.0
		for _, it := range o.Items {
			assert.NotEmpty(t, it.Name)
			assert.Greater(t, it.Price, 0.0)
			assert.GreaterOrEqual(t, it.Quantity, 1)
			assert.LessOrEqual(t, it.Quantity, 3)
			sum += it.Price * float64(it.Quantity)
		}
		// Total is the rounded sum of line items.
		assert.InDelta(t, math.Round(sum*100)/100, o.Total, 1e-9)

		h := o.CreatedAt.Hour()
		assert.GreaterOrEqual(t, h, 9)
		assert.LessOrEqual(t, h, 22)
	}
}

func TestGenerateStatusByAge(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	orders := Generate(rand.New(rand.NewSource(7)), "acc-test", now)

	today := now.Truncate(24 * time.Hour)
	for _, o := range orders {
		age := int(today.Sub(o.CreatedAt.Truncate(24 * time.Hour)).Hours() / 24)
		switch {
		case age <= 0:
			// Today: anything valid goes.
		case age == 1:
			assert.Contains(t, []entity.OrderStatus{entity.StatusDelivered, entity.StatusReady}, o.Status)
		default:
			assert.Equal(t, entity.StatusDelivered, o.Status, "order aged %d days", age)
		}
	}
}

func TestGenerateCoversFullWindow(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	orders := Generate(rand.New(rand.NewSource(3)), "acc-test", now)

	days := map[string]bool{}
	for _, o := range orders {
		days[o.CreatedAt.Format("2006-01-02")] = true
		assert.False(t, o.CreatedAt.After(now.Add(24*time.Hour)))
		assert.False(t, o.CreatedAt.Before(now.AddDate(0, 0, -Days)))
	}
	// Every generated day has at least one order.
	assert.Len(t, days, Days)
}

func TestGenerateDeterministicUnderSeed(t *testing.T) {
	a := genAt(99)
	b := genAt(99)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].CustomerName, b[i].CustomerName)
		assert.Equal(t, a[i].Status, b[i].Status)
		assert.Equal(t, a[i].Total, b[i].Total)
		assert.Equal(t, a[i].CreatedAt, b[i].CreatedAt)
	}

	c := genAt(100)
	assert.NotEqual(t, a, c)
}

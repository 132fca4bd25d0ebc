// Package seed produces plausible demonstration orders for a restaurant
// account. Development tooling only; nothing here runs in production paths.
package seed

import (
	"math"
	"math/rand"
	"time"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
)

type menuEntry struct {
	Name  string
	Price float64
}

// Base menu used for generated orders.
var menu = []menuEntry{
	{"Margherita Pizza", 15.99},
	{"Pepperoni Pizza", 18.99},
	{"Supreme Pizza", 22.99},
	{"Hawaiian Pizza", 19.99},
	{"BBQ Chicken Pizza", 21.99},
	{"Veggie Pizza", 17.99},
	{"Meat Lovers Pizza", 24.99},
	{"Gluten-Free Pizza", 22.99},
	{"Seafood Pizza", 26.99},
	{"Caesar Salad", 8.99},
	{"Greek Salad", 11.99},
	{"Side Salad", 3.00},
	{"Buffalo Wings", 9.76},
	{"Chicken Wings", 14.98},
	{"Mozzarella Sticks", 10.99},
	{"Onion Rings", 6.99},
	{"Garlic Bread", 5.99},
	{"Breadsticks", 4.99},
	{"Chicken Alfredo Pasta", 17.99},
	{"Soft Drink", 2.99},
	{"Tiramisu", 6.99},
	{"Chocolate Cake", 8.99},
}

var customerNames = []string{
	"Alex Johnson", "Sarah Chen", "Mike Rodriguez", "Emily Davis", "James Wilson",
	"Lisa Thompson", "Robert Brown", "Jennifer Lee", "Daniel Jackson", "Maria Garcia",
	"David Smith", "Ashley Miller", "Chris Anderson", "Jessica Taylor", "Kevin Martinez",
	"Amanda White", "Brian Clark", "Nicole Lewis", "Ryan Walker", "Stephanie Hall",
}

// Days of history generated, ending today.
const Days = 30

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Generate builds 30 days of synthetic orders for the account, newest day
// first. The PRNG is injected so tests can pin the sequence.
//
// Distributions: 1-5 orders per day; order time between 09:00 and 22:59;
// 1-4 line items drawn from the fixed menu with quantity 1-3. Today's orders
// get a uniformly random status, yesterday's are delivered with probability
// 0.8 (otherwise ready), anything older is delivered.
func Generate(rng *rand.Rand, accountID string, now time.Time) []entity.Order {
	orders := make([]entity.Order, 0, Days*3)

	for day := 0; day < Days; day++ {
		date := now.AddDate(0, 0, -day)
		ordersForDay := rng.Intn(5) + 1

		for i := 0; i < ordersForDay; i++ {
			hour := rng.Intn(14) + 9
			minute := rng.Intn(60)
			createdAt := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())

			itemCount := rng.Intn(4) + 1
			items := make([]entity.OrderItem, 0, itemCount)
			total := 0.0
			for j := 0; j < itemCount; j++ {
				entry := menu[rng.Intn(len(menu))]
				qty := rng.Intn(3) + 1
				items = append(items, entity.OrderItem{
					Name:     entry.Name,
					Price:    entry.Price,
					Quantity: qty,
				})
				total += entry.Price * float64(qty)
			}

			status := entity.StatusDelivered
			switch {
			case day == 0:
				status = entity.OrderStatuses[rng.Intn(len(entity.OrderStatuses))]
			case day == 1:
				if rng.Float64() > 0.8 {
					status = entity.StatusReady
				}
			}

			orderType := entity.TypePickup
			if rng.Intn(2) == 1 {
				orderType = entity.TypeDelivery
			}

			orders = append(orders, entity.Order{
				AccountID:    accountID,
				CustomerName: customerNames[rng.Intn(len(customerNames))],
				OrderType:    orderType,
				Status:       status,
				Total:        round2(total),
				CreatedAt:    createdAt,
				UpdatedAt:    createdAt,
				Items:        items,
			})
		}
	}
	return orders
}

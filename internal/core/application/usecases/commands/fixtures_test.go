package commands_test

import (
	"testing"
	"time"

	"deliverytech/internal/core/domain/model/customer"
	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/model/order"
	"deliverytech/internal/core/domain/model/product"
	"deliverytech/internal/core/domain/model/restaurant"
	"deliverytech/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func storedCustomer(t *testing.T, id int64, active bool) *customer.Customer {
	t.Helper()
	cust, err := customer.RestoreCustomer(kernel.ID(id), "Maria Silva", "maria@example.com",
		"+5511999990000", "Rua A 10", active)
	require.NoError(t, err)
	return cust
}

func storedRestaurant(t *testing.T, id int64, active bool) *restaurant.Restaurant {
	t.Helper()
	rest, err := restaurant.RestoreRestaurant(kernel.ID(id), "Napoli", "Pizza", "Via Roma 1",
		decimal.RequireFromString("5.00"), decimal.RequireFromString("4.5"), active, time.Now().UTC())
	require.NoError(t, err)
	return rest
}

func storedProduct(t *testing.T, id, restaurantID int64, available bool) *product.Product {
	t.Helper()
	prod, err := product.RestoreProduct(kernel.ID(id), kernel.ID(restaurantID), "Margherita", "", "Pizza",
		decimal.RequireFromString("19.90"), available)
	require.NoError(t, err)
	return prod
}

func storedOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.ID(1), decimal.RequireFromString("19.90"), 2)
	require.NoError(t, err)

	ord, err := order.RestoreOrder(kernel.ID(id), kernel.ID(11), kernel.ID(7),
		[]order.Line{line}, decimal.RequireFromString("44.80"), status,
		time.Now().UTC(), "", 1)
	require.NoError(t, err)
	return ord
}

func itemRequest(t *testing.T, productID int64, quantity int) services.ItemRequest {
	t.Helper()
	item, err := services.NewItemRequest(kernel.ID(productID), quantity)
	require.NoError(t, err)
	return item
}

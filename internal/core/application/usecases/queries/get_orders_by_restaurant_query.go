package queries

import (
	"errors"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/pkg/errs"
	"deliverytech/internal/pkg/guard"
)

var ErrGetOrdersByRestaurantQueryIsNotConstructed = errors.New(
	"GetOrdersByRestaurantQuery must be created via NewGetOrdersByRestaurantQuery constructor",
)

// GetOrdersByRestaurantQuery retrieves every order placed at a
// restaurant, newest first.
type GetOrdersByRestaurantQuery struct {
	restaurantID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrdersByRestaurantQuery creates a query for a restaurant's
// orders.
func NewGetOrdersByRestaurantQuery(restaurantID kernel.ID) (GetOrdersByRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetOrdersByRestaurantQuery{}, errs.NewValueIsInvalidErrorWithCause("restaurantId is invalid", err)
	}

	return GetOrdersByRestaurantQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByRestaurantQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are requested.
func (q GetOrdersByRestaurantQuery) RestaurantID() kernel.ID {
	return q.restaurantID
}

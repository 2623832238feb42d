package queries

import (
	"errors"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/pkg/errs"
	"deliverytech/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetRestaurantSalesTotalQueryIsNotConstructed = errors.New(
	"GetRestaurantSalesTotalQuery must be created via NewGetRestaurantSalesTotalQuery constructor",
)

// GetRestaurantSalesTotalQuery computes a restaurant's sales figures.
// Canceled orders do not count towards sales.
type GetRestaurantSalesTotalQuery struct {
	restaurantID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetRestaurantSalesTotalQuery creates a query for a restaurant's
// sales total.
func NewGetRestaurantSalesTotalQuery(restaurantID kernel.ID) (GetRestaurantSalesTotalQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantSalesTotalQuery{}, errs.NewValueIsInvalidErrorWithCause("restaurantId is invalid", err)
	}

	return GetRestaurantSalesTotalQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantSalesTotalQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantSalesTotalQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose sales are requested.
func (q GetRestaurantSalesTotalQuery) RestaurantID() kernel.ID {
	return q.restaurantID
}

// RestaurantSalesTotalResponse carries a restaurant's sales figures:
// how many non-canceled orders were placed and their combined total.
type RestaurantSalesTotalResponse struct {
	RestaurantID kernel.ID
	OrderCount   int64
	SalesTotal   decimal.Decimal
}

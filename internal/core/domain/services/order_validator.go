package services

import (
	"context"
	"fmt"

	"deliverytech/internal/core/domain/model/customer"
	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/model/restaurant"
	"deliverytech/internal/pkg/errs"
)

// CustomerResolver loads customers by identifier.
type CustomerResolver interface {
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)
}

// RestaurantResolver loads restaurants by identifier.
type RestaurantResolver interface {
	Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error)
}

// OrderValidator is the domain service that checks the parties of a new
// order. An order may only be placed by an active customer at an active
// restaurant.
type OrderValidator struct{}

// NewOrderValidator creates a new OrderValidator instance.
func NewOrderValidator() OrderValidator {
	return OrderValidator{}
}

// ValidateAndResolve loads the customer and the restaurant and verifies
// both are active.
//
// Returns:
//   - *customer.Customer, *restaurant.Restaurant: the resolved parties
//   - error: ObjectNotFoundError from the resolvers for unknown
//     identifiers, BusinessRuleError when either party is deactivated
func (v OrderValidator) ValidateAndResolve(
	ctx context.Context,
	customers CustomerResolver,
	restaurants RestaurantResolver,
	customerID, restaurantID kernel.ID,
) (*customer.Customer, *restaurant.Restaurant, error) {
	cust, err := customers.Get(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}

	if !cust.IsActive() {
		return nil, nil, errs.NewBusinessRuleError(fmt.Sprintf(
			"customer %s is not active", cust.ID()))
	}

	rest, err := restaurants.Get(ctx, restaurantID)
	if err != nil {
		return nil, nil, err
	}

	if !rest.IsActive() {
		return nil, nil, errs.NewBusinessRuleError(fmt.Sprintf(
			"restaurant %s is not active", rest.ID()))
	}

	return cust, rest, nil
}

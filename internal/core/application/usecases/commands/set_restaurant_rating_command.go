package commands

import (
	"errors"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/pkg/errs"
	"deliverytech/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSetRestaurantRatingCommandIsNotConstructed = errors.New(
	"SetRestaurantRatingCommand must be created via NewSetRestaurantRatingCommand constructor",
)

// SetRestaurantRatingCommand updates a restaurant's rating.
// The 0 to 5 range check lives on the aggregate so every rating write
// goes through the same rule.
type SetRestaurantRatingCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.ID
	rating       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewSetRestaurantRatingCommand creates a command to update a restaurant's
// rating.
func NewSetRestaurantRatingCommand(restaurantID kernel.ID, rating decimal.Decimal) (SetRestaurantRatingCommand, error) {
	command := SetRestaurantRatingCommand{
		rating: rating,
		guard:  guard.NewConstructorGuard(),
	}

	if err := restaurantID.Validate(); err != nil {
		return SetRestaurantRatingCommand{}, errs.NewValueIsInvalidErrorWithCause("restaurantId is invalid", err)
	}
	command.restaurantID = restaurantID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRestaurantRatingCommand) Validate() error {
	return c.guard.Validate(ErrSetRestaurantRatingCommandIsNotConstructed)
}

// RestaurantID returns the target restaurant's identifier.
func (c SetRestaurantRatingCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

// Rating returns the new rating value.
func (c SetRestaurantRatingCommand) Rating() decimal.Decimal {
	return c.rating
}

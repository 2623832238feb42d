package commands

import (
	"errors"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/pkg/errs"
	"deliverytech/internal/pkg/guard"
)

var ErrSetRestaurantActiveCommandIsNotConstructed = errors.New(
	"SetRestaurantActiveCommand must be created via NewSetRestaurantActiveCommand constructor",
)

// SetRestaurantActiveCommand activates or deactivates a restaurant.
// Deactivated restaurants stop accepting new orders; orders already in
// flight keep progressing.
type SetRestaurantActiveCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.ID
	active       bool

	guard guard.ConstructorGuard
}

// NewSetRestaurantActiveCommand creates a command to change a
// restaurant's active flag.
func NewSetRestaurantActiveCommand(restaurantID kernel.ID, active bool) (SetRestaurantActiveCommand, error) {
	command := SetRestaurantActiveCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := restaurantID.Validate(); err != nil {
		return SetRestaurantActiveCommand{}, errs.NewValueIsInvalidErrorWithCause("restaurantId is invalid", err)
	}
	command.restaurantID = restaurantID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRestaurantActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetRestaurantActiveCommandIsNotConstructed)
}

// RestaurantID returns the target restaurant's identifier.
func (c SetRestaurantActiveCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

// Active returns the desired active flag.
func (c SetRestaurantActiveCommand) Active() bool {
	return c.active
}

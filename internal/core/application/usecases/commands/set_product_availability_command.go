package commands

import (
	"errors"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/pkg/errs"
	"deliverytech/internal/pkg/guard"
)

var ErrSetProductAvailabilityCommandIsNotConstructed = errors.New(
	"SetProductAvailabilityCommand must be created via NewSetProductAvailabilityCommand constructor",
)

// SetProductAvailabilityCommand toggles whether a product may appear in
// new orders. Orders that already reference the product are unaffected.
type SetProductAvailabilityCommand struct { //nolint:recvcheck //using for validation
	productID kernel.ID
	available bool

	guard guard.ConstructorGuard
}

// NewSetProductAvailabilityCommand creates a command to change a
// product's availability.
func NewSetProductAvailabilityCommand(productID kernel.ID, available bool) (SetProductAvailabilityCommand, error) {
	command := SetProductAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := productID.Validate(); err != nil {
		return SetProductAvailabilityCommand{}, errs.NewValueIsInvalidErrorWithCause("productId is invalid", err)
	}
	command.productID = productID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetProductAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetProductAvailabilityCommandIsNotConstructed)
}

// ProductID returns the target product's identifier.
func (c SetProductAvailabilityCommand) ProductID() kernel.ID {
	return c.productID
}

// Available returns the desired availability flag.
func (c SetProductAvailabilityCommand) Available() bool {
	return c.available
}

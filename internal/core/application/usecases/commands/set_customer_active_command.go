package commands

import (
	"errors"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/pkg/errs"
	"deliverytech/internal/pkg/guard"
)

var ErrSetCustomerActiveCommandIsNotConstructed = errors.New(
	"SetCustomerActiveCommand must be created via NewSetCustomerActiveCommand constructor",
)

// SetCustomerActiveCommand activates or deactivates a customer account.
// Deactivated customers cannot place new orders; their existing orders
// are unaffected.
type SetCustomerActiveCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	active     bool

	guard guard.ConstructorGuard
}

// NewSetCustomerActiveCommand creates a command to change a customer's
// active flag.
func NewSetCustomerActiveCommand(customerID kernel.ID, active bool) (SetCustomerActiveCommand, error) {
	command := SetCustomerActiveCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := customerID.Validate(); err != nil {
		return SetCustomerActiveCommand{}, errs.NewValueIsInvalidErrorWithCause("customerId is invalid", err)
	}
	command.customerID = customerID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCustomerActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetCustomerActiveCommandIsNotConstructed)
}

// CustomerID returns the target customer's identifier.
func (c SetCustomerActiveCommand) CustomerID() kernel.ID {
	return c.customerID
}

// Active returns the desired active flag.
func (c SetCustomerActiveCommand) Active() bool {
	return c.active
}

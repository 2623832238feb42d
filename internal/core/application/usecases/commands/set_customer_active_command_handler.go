package commands

import (
	"context"
)

// SetCustomerActiveCommandHandler handles customer activation and
// deactivation.
type SetCustomerActiveCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewSetCustomerActiveCommandHandler creates a handler for customer
// activation operations.
func NewSetCustomerActiveCommandHandler(uowFactory CustomerUoWFactory) SetCustomerActiveCommandHandler {
	return SetCustomerActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the customer, flips the active flag and persists the
// change. Setting the flag to its current value is a harmless no-op
// write.
func (h SetCustomerActiveCommandHandler) Handle(ctx context.Context, command SetCustomerActiveCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()

	cust, err := customerRepo.Get(ctx, command.CustomerID())
	if err != nil {
		return err
	}

	if command.Active() {
		cust.Activate()
	} else {
		cust.Deactivate()
	}

	if err = customerRepo.Update(ctx, cust); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"deliverytech/internal/core/domain/model/customer"
	"deliverytech/internal/pkg/errs"
)

// RegisterCustomerCommandHandler handles customer registration.
// Rejects registration when the email address is already taken.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer
// registration operations.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the registered
// customer with its assigned identifier.
//
// Returns a ConflictError when the email address is already registered.
// The uniqueness check and the insert run in one transaction; the unique
// index on the email column backs the check up under concurrency.
func (h RegisterCustomerCommandHandler) Handle(
	ctx context.Context,
	command RegisterCustomerCommand,
) (*customer.Customer, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	newCustomer, err := customer.NewCustomer(
		command.Name(), command.Email(), command.Phone(), command.Address())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()

	taken, err := customerRepo.ExistsWithEmail(ctx, newCustomer.Email())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewConflictError("email", newCustomer.Email())
	}

	if err = customerRepo.Add(ctx, newCustomer); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newCustomer, nil
}

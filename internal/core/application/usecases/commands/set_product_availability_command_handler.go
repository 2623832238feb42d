package commands

import (
	"context"
)

// SetProductAvailabilityCommandHandler handles product availability
// changes.
type SetProductAvailabilityCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewSetProductAvailabilityCommandHandler creates a handler for product
// availability operations.
func NewSetProductAvailabilityCommandHandler(uowFactory CatalogUoWFactory) SetProductAvailabilityCommandHandler {
	return SetProductAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the product, sets the availability flag and persists the
// change.
func (h SetProductAvailabilityCommandHandler) Handle(ctx context.Context, command SetProductAvailabilityCommand) error {
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

	productRepo := uow.ProductRepository()

	prod, err := productRepo.Get(ctx, command.ProductID())
	if err != nil {
		return err
	}

	prod.SetAvailability(command.Available())

	if err = productRepo.Update(ctx, prod); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

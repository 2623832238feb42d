package commands

import (
	"context"
)

// SetRestaurantActiveCommandHandler handles restaurant activation and
// deactivation.
type SetRestaurantActiveCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewSetRestaurantActiveCommandHandler creates a handler for restaurant
// activation operations.
func NewSetRestaurantActiveCommandHandler(uowFactory RestaurantUoWFactory) SetRestaurantActiveCommandHandler {
	return SetRestaurantActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the restaurant, sets the active flag and persists the
// change.
func (h SetRestaurantActiveCommandHandler) Handle(ctx context.Context, command SetRestaurantActiveCommand) error {
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

	restaurantRepo := uow.RestaurantRepository()

	rest, err := restaurantRepo.Get(ctx, command.RestaurantID())
	if err != nil {
		return err
	}

	rest.SetActive(command.Active())

	if err = restaurantRepo.Update(ctx, rest); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

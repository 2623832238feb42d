package commands

import (
	"context"
)

// SetRestaurantRatingCommandHandler handles restaurant rating updates.
type SetRestaurantRatingCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewSetRestaurantRatingCommandHandler creates a handler for rating
// update operations.
func NewSetRestaurantRatingCommandHandler(uowFactory RestaurantUoWFactory) SetRestaurantRatingCommandHandler {
	return SetRestaurantRatingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the restaurant, applies the new rating and persists the
// change. An out-of-range rating is rejected by the aggregate before
// anything is written.
func (h SetRestaurantRatingCommandHandler) Handle(ctx context.Context, command SetRestaurantRatingCommand) error {
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

	if err = rest.SetRating(command.Rating()); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, rest); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

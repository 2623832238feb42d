package commands

import (
	"context"

	"deliverytech/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler handles restaurant registration.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant
// registration operations.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created restaurant with
// its assigned identifier. New restaurants start active.
func (h CreateRestaurantCommandHandler) Handle(
	ctx context.Context,
	command CreateRestaurantCommand,
) (*restaurant.Restaurant, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	newRestaurant, err := restaurant.NewRestaurant(
		command.Name(), command.Category(), command.Address(),
		command.DeliveryFee(), command.Rating())
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

	if err = uow.RestaurantRepository().Add(ctx, newRestaurant); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newRestaurant, nil
}

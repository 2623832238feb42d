package ports

import (
	"context"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates.
type RestaurantRepository interface {
	// Add persists a new restaurant and assigns its store-generated
	// identifier.
	Add(ctx context.Context, restaurant *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant aggregate.
	Update(ctx context.Context, restaurant *restaurant.Restaurant) error

	// Get retrieves a restaurant aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such restaurant exists.
	Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error)
}

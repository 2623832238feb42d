package ports

import (
	"context"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted; cancellation is a status change persisted
// through Update.
type OrderRepository interface {
	// Add persists a new order with its lines and assigns the order's
	// store-generated identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// guarded by the aggregate's version counter; a VersionIsInvalidError
	// is returned when another transaction modified the order first.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, lines
	// included. Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)
}

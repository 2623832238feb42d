package ports

import (
	"context"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product and assigns its store-generated identifier.
	Add(ctx context.Context, product *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, product *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)
}

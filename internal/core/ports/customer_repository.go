// Package ports defines the persistence contracts between the application
// core and infrastructure. These interfaces enable dependency inversion
// and testability.
package ports

import (
	"context"

	"deliverytech/internal/core/domain/model/customer"
	"deliverytech/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer and assigns its store-generated identifier.
	// Returns a ConflictError when the email address is already registered.
	Add(ctx context.Context, customer *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, customer *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such customer exists.
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)

	// ExistsWithEmail reports whether a customer is registered under the
	// given email address. The comparison is case-insensitive.
	ExistsWithEmail(ctx context.Context, email string) (bool, error)
}

// Package product provides the Product aggregate. Every product belongs to
// exactly one restaurant; that ownership is fixed at creation and can never
// change. Unavailable products are rejected during order pricing.
package product

import (
	"errors"
	"strings"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct or RestoreProduct factories.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrProductIDAlreadyAssigned is returned when attempting to assign an
	// identifier to a product that already has one.
	ErrProductIDAlreadyAssigned = errors.New("product already has an identifier")
)

// Product represents a menu item offered by a restaurant.
//
// Invariants:
//   - Price is strictly positive
//   - The owning restaurant is set at creation and immutable afterwards
type Product struct {
	id           kernel.ID
	restaurantID kernel.ID
	name         string
	description  string
	category     string
	price        decimal.Decimal
	available    bool

	isConstructed bool
}

// NewProduct creates an available product owned by the given restaurant.
func NewProduct(restaurantID kernel.ID, name, description, category string, price decimal.Decimal) (*Product, error) {
	product := &Product{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setRestaurantID(restaurantID),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	product.description = strings.TrimSpace(description)
	product.category = strings.TrimSpace(category)
	return product, nil
}

// RestoreProduct reconstructs a product from its persisted state.
func RestoreProduct(
	id, restaurantID kernel.ID,
	name, description, category string,
	price decimal.Decimal,
	available bool,
) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	product, err := NewProduct(restaurantID, name, description, category, price)
	if err != nil {
		return nil, err
	}

	product.id = id
	product.available = available
	return product, nil
}

// Validate ensures the Product was created through a factory function.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier on a newly persisted
// product. Fails if an identifier was already assigned.
func (p *Product) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !p.id.IsZero() {
		return ErrProductIDAlreadyAssigned
	}

	p.id = id
	return nil
}

// ID returns the product's identifier (zero until persisted).
func (p *Product) ID() kernel.ID {
	return p.id
}

// RestaurantID returns the owning restaurant's identifier.
// Ownership is immutable after creation.
func (p *Product) RestaurantID() kernel.ID {
	return p.restaurantID
}

// Name returns the product's name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product's description.
func (p *Product) Description() string {
	return p.description
}

// Category returns the product's category.
func (p *Product) Category() string {
	return p.category
}

// Price returns the product's unit price (always positive).
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// IsAvailable reports whether the product may be ordered.
func (p *Product) IsAvailable() bool {
	return p.available
}

// SetAvailability toggles whether the product may appear in new orders.
func (p *Product) SetAvailability(available bool) {
	p.available = available
}

func (p *Product) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId is invalid", err)
	}
	p.restaurantID = restaurantID
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = strings.TrimSpace(name)
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			errors.New(price.String()+" is not greater than 0"))
	}
	p.price = price
	return nil
}

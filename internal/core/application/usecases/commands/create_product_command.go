package commands

import (
	"errors"
	"strings"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/pkg/errs"
	"deliverytech/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a menu item to a
// restaurant.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.ID
	name         string
	description  string
	category     string
	price        decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a product. The name is
// required and the price must be strictly positive.
func NewCreateProductCommand(
	restaurantID kernel.ID,
	name, description, category string,
	price decimal.Decimal,
) (CreateProductCommand, error) {
	command := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(restaurantID),
		command.setName(name),
		command.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	command.description = strings.TrimSpace(description)
	command.category = strings.TrimSpace(category)
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// RestaurantID returns the owning restaurant's identifier.
func (c CreateProductCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

// Name returns the product's name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product's description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Category returns the product's category.
func (c CreateProductCommand) Category() string {
	return c.category
}

// Price returns the product's unit price.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

func (c *CreateProductCommand) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId is invalid", err)
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = strings.TrimSpace(name)
	return nil
}

func (c *CreateProductCommand) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			errors.New(price.String()+" is not greater than 0"))
	}
	c.price = price
	return nil
}

package commands

import (
	"errors"
	"strings"

	"deliverytech/internal/pkg/errs"
	"deliverytech/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand represents a request to register a new
// restaurant. A zero rating means "unset" and lets the aggregate apply
// its default.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	name        string
	category    string
	address     string
	deliveryFee decimal.Decimal
	rating      decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
// The name is required and the delivery fee must not be negative; rating
// bounds are enforced by the aggregate.
func NewCreateRestaurantCommand(
	name, category, address string,
	deliveryFee, rating decimal.Decimal,
) (CreateRestaurantCommand, error) {
	command := CreateRestaurantCommand{
		rating: rating,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setDeliveryFee(deliveryFee),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	command.category = strings.TrimSpace(category)
	command.address = strings.TrimSpace(address)
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// Name returns the restaurant's name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Category returns the restaurant's cuisine category.
func (c CreateRestaurantCommand) Category() string {
	return c.category
}

// Address returns the restaurant's address.
func (c CreateRestaurantCommand) Address() string {
	return c.address
}

// DeliveryFee returns the flat delivery fee charged per order.
func (c CreateRestaurantCommand) DeliveryFee() decimal.Decimal {
	return c.deliveryFee
}

// Rating returns the initial rating, or zero when unset.
func (c CreateRestaurantCommand) Rating() decimal.Decimal {
	return c.rating
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = strings.TrimSpace(name)
	return nil
}

func (c *CreateRestaurantCommand) setDeliveryFee(deliveryFee decimal.Decimal) error {
	if deliveryFee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee is invalid",
			errors.New(deliveryFee.String()+" is negative"))
	}
	c.deliveryFee = deliveryFee
	return nil
}

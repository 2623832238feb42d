package commands

import (
	"errors"
	"strings"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/services"
	"deliverytech/internal/pkg/errs"
	"deliverytech/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place an order: a customer,
// a restaurant, requested items and optional free-text notes. Prices are
// not part of the request; the pricing service resolves them from the
// catalog.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.ID
	restaurantID kernel.ID
	notes        string
	items        []services.ItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// At least one item is required.
func NewCreateOrderCommand(
	customerID, restaurantID kernel.ID,
	notes string,
	items []services.ItemRequest,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setRestaurantID(restaurantID),
		command.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

// RestaurantID returns the identifier of the restaurant the order
// targets.
func (c CreateOrderCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

// Notes returns the free-text notes for the order.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Items returns a copy of the requested items.
func (c CreateOrderCommand) Items() []services.ItemRequest {
	items := make([]services.ItemRequest, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerId is invalid", err)
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId is invalid", err)
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []services.ItemRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]services.ItemRequest, len(items))
	copy(c.items, items)
	return nil
}

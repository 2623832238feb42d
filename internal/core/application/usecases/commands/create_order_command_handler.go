package commands

import (
	"context"

	"deliverytech/internal/core/domain/model/order"
	"deliverytech/internal/core/domain/services"
)

// CreateOrderCommandHandler handles order placement.
//
// Placement runs in a single transaction: the customer and restaurant
// are checked, the items are priced against the catalog, and the order
// is stored in Pending status with the computed total. The same pricing
// service backs the quote query, so a quote for the same basket always
// matches the stored total.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement
// operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created order with its
// assigned identifier.
//
// Returns:
//   - ObjectNotFoundError when the customer, restaurant or a product
//     does not exist
//   - BusinessRuleError when a party is deactivated, a product is
//     unavailable, or a product belongs to another restaurant
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cust, rest, err := services.NewOrderValidator().ValidateAndResolve(ctx,
		uow.CustomerRepository(), uow.RestaurantRepository(),
		command.CustomerID(), command.RestaurantID())
	if err != nil {
		return nil, err
	}

	lines, total, err := services.NewOrderPricer().Price(ctx,
		uow.ProductRepository(), rest, command.Items())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cust.ID(), rest.ID(), command.Notes(), lines, total)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/model/order"
	"deliverytech/internal/core/domain/model/product"
	"deliverytech/internal/core/domain/model/restaurant"
	"deliverytech/internal/pkg/errs"
	"deliverytech/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemRequestIsNotConstructed is returned when an ItemRequest was not
// created via NewItemRequest.
var ErrItemRequestIsNotConstructed = errors.New(
	"ItemRequest must be created via NewItemRequest constructor",
)

// ProductResolver loads products by identifier. Both the transactional
// product repository and its read-only counterpart satisfy it, so the
// pricer can run inside an order-creation transaction and for standalone
// quotes alike.
type ProductResolver interface {
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)
}

// ItemRequest is a requested product with a quantity, before the catalog
// has been consulted. It carries no price; the pricer resolves the current
// unit price when building order lines.
type ItemRequest struct { //nolint:recvcheck //using for validation
	productID kernel.ID
	quantity  int

	guard guard.ConstructorGuard
}

// NewItemRequest creates an item request for the given product and quantity.
// The quantity must be at least 1.
func NewItemRequest(productID kernel.ID, quantity int) (ItemRequest, error) {
	item := ItemRequest{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return ItemRequest{}, err
	}

	return item, nil
}

// Validate ensures the ItemRequest was created through the constructor.
func (i ItemRequest) Validate() error {
	return i.guard.Validate(ErrItemRequestIsNotConstructed)
}

// ProductID returns the requested product's identifier.
func (i ItemRequest) ProductID() kernel.ID {
	return i.productID
}

// Quantity returns the requested quantity (always ≥ 1).
func (i ItemRequest) Quantity() int {
	return i.quantity
}

func (i *ItemRequest) setProductID(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("productId is invalid", err)
	}
	i.productID = productID
	return nil
}

func (i *ItemRequest) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

// OrderPricer is the domain service that turns requested items into priced
// order lines and computes the order total.
//
// It is the single pricing routine in the system: order creation and
// standalone quotes both go through it, so a quote for a given basket is
// always identical to the total the order would be stored with.
//
// Pricing rules:
//   - Every requested product must exist, be available, and belong to the
//     restaurant the order targets
//   - Each line captures the product's current unit price
//   - Total = sum of line subtotals + the restaurant's delivery fee,
//     rounded to 2 decimal places; intermediate values stay unrounded
type OrderPricer struct{}

// NewOrderPricer creates a new OrderPricer instance.
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price resolves the requested items against the catalog and computes the
// order total for the given restaurant.
//
// Returns:
//   - []order.Line: one line per item, with the unit price snapshot
//   - decimal.Decimal: items subtotal plus delivery fee, 2 decimal places
//   - error: ValueIsRequiredError for an empty basket, ObjectNotFoundError
//     from the resolver for unknown products, BusinessRuleError for
//     unavailable products or products of another restaurant
func (p OrderPricer) Price(
	ctx context.Context,
	products ProductResolver,
	rest *restaurant.Restaurant,
	items []ItemRequest,
) ([]order.Line, decimal.Decimal, error) {
	if err := rest.Validate(); err != nil {
		return nil, decimal.Zero, err
	}

	if len(items) == 0 {
		return nil, decimal.Zero, errs.NewValueIsRequiredError("items")
	}

	lines := make([]order.Line, 0, len(items))
	subtotal := decimal.Zero

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, decimal.Zero, err
		}

		prod, err := products.Get(ctx, item.ProductID())
		if err != nil {
			return nil, decimal.Zero, err
		}

		if !prod.RestaurantID().IsEqual(rest.ID()) {
			return nil, decimal.Zero, errs.NewBusinessRuleError(fmt.Sprintf(
				"product %s does not belong to restaurant %s", prod.ID(), rest.ID()))
		}

		if !prod.IsAvailable() {
			return nil, decimal.Zero, errs.NewBusinessRuleError(fmt.Sprintf(
				"product %s is not available", prod.ID()))
		}

		line, err := order.NewLine(prod.ID(), prod.Price(), item.Quantity())
		if err != nil {
			return nil, decimal.Zero, err
		}

		lines = append(lines, line)
		subtotal = subtotal.Add(line.Subtotal())
	}

	total := kernel.RoundMoney(subtotal.Add(rest.DeliveryFee()))
	return lines, total, nil
}

package queries

import (
	"errors"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/services"
	"deliverytech/internal/pkg/errs"
	"deliverytech/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQuoteQueryIsNotConstructed = errors.New(
	"GetOrderQuoteQuery must be created via NewGetOrderQuoteQuery constructor",
)

// GetOrderQuoteQuery prices a basket without placing an order. The quote
// goes through the same pricing service as order creation, so the quoted
// total matches what the order would be stored with.
type GetOrderQuoteQuery struct {
	restaurantID kernel.ID
	items        []services.ItemRequest

	guard guard.ConstructorGuard
}

// NewGetOrderQuoteQuery creates a quote request for a basket at a
// restaurant. At least one item is required.
func NewGetOrderQuoteQuery(restaurantID kernel.ID, items []services.ItemRequest) (GetOrderQuoteQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetOrderQuoteQuery{}, errs.NewValueIsInvalidErrorWithCause("restaurantId is invalid", err)
	}

	if len(items) == 0 {
		return GetOrderQuoteQuery{}, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return GetOrderQuoteQuery{}, err
		}
	}

	query := GetOrderQuoteQuery{
		restaurantID: restaurantID,
		items:        make([]services.ItemRequest, len(items)),
		guard:        guard.NewConstructorGuard(),
	}
	copy(query.items, items)

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQuoteQueryIsNotConstructed)
}

// RestaurantID returns the restaurant the basket targets.
func (q GetOrderQuoteQuery) RestaurantID() kernel.ID {
	return q.restaurantID
}

// Items returns a copy of the requested items.
func (q GetOrderQuoteQuery) Items() []services.ItemRequest {
	items := make([]services.ItemRequest, len(q.items))
	copy(items, q.items)
	return items
}

// QuoteLineResponse is one priced basket line.
type QuoteLineResponse struct {
	ProductID kernel.ID
	UnitPrice decimal.Decimal
	Quantity  int
	Subtotal  decimal.Decimal
}

// OrderQuoteResponse is the priced basket: per-line subtotals, the
// delivery fee and the grand total (2 decimal places).
type OrderQuoteResponse struct {
	RestaurantID kernel.ID
	Lines        []QuoteLineResponse
	DeliveryFee  decimal.Decimal
	Total        decimal.Decimal
}

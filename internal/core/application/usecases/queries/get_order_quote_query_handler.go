package queries

import (
	"context"

	"deliverytech/internal/core/domain/services"
	"deliverytech/internal/core/ports"
)

// GetOrderQuoteQueryHandler prices baskets against the live catalog.
//
// Unlike the other query handlers it works through repositories rather
// than raw SQL: pricing needs the same product resolution and rules the
// order-creation path uses, and both delegate to the pricing service.
type GetOrderQuoteQueryHandler struct {
	restaurants ports.RestaurantRepository
	products    ports.ProductRepository
}

// NewGetOrderQuoteQueryHandler creates a handler for quote queries.
func NewGetOrderQuoteQueryHandler(
	restaurants ports.RestaurantRepository,
	products ports.ProductRepository,
) GetOrderQuoteQueryHandler {
	return GetOrderQuoteQueryHandler{
		restaurants: restaurants,
		products:    products,
	}
}

// Handle prices the basket and returns the per-line breakdown and total.
// The restaurant must exist; a quote against a deactivated restaurant is
// still produced since nothing is ordered.
func (h GetOrderQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuoteQuery,
) (OrderQuoteResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderQuoteResponse{}, err
	}

	rest, err := h.restaurants.Get(ctx, query.RestaurantID())
	if err != nil {
		return OrderQuoteResponse{}, err
	}

	lines, total, err := services.NewOrderPricer().Price(ctx, h.products, rest, query.Items())
	if err != nil {
		return OrderQuoteResponse{}, err
	}

	quoteLines := make([]QuoteLineResponse, 0, len(lines))
	for _, line := range lines {
		quoteLines = append(quoteLines, QuoteLineResponse{
			ProductID: line.ProductID(),
			UnitPrice: line.UnitPrice(),
			Quantity:  line.Quantity(),
			Subtotal:  line.Subtotal(),
		})
	}

	return OrderQuoteResponse{
		RestaurantID: rest.ID(),
		Lines:        quoteLines,
		DeliveryFee:  rest.DeliveryFee(),
		Total:        total,
	}, nil
}

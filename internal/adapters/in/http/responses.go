package http

import (
	"time"

	"deliverytech/internal/core/application/usecases/queries"
	"deliverytech/internal/core/domain/model/customer"
	"deliverytech/internal/core/domain/model/order"
	"deliverytech/internal/core/domain/model/product"
	"deliverytech/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
)

// CustomerResponse is the JSON shape of a customer.
type CustomerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Active  bool   `json:"active"`
}

func toCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID().Int64(),
		Name:    c.Name(),
		Email:   c.Email(),
		Phone:   c.Phone(),
		Address: c.Address(),
		Active:  c.IsActive(),
	}
}

// RestaurantResponse is the JSON shape of a restaurant.
type RestaurantResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Address     string          `json:"address"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Rating      decimal.Decimal `json:"rating"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func toRestaurantResponse(r *restaurant.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:          r.ID().Int64(),
		Name:        r.Name(),
		Category:    r.Category(),
		Address:     r.Address(),
		DeliveryFee: r.DeliveryFee(),
		Rating:      r.Rating(),
		Active:      r.IsActive(),
		CreatedAt:   r.CreatedAt(),
	}
}

// ProductResponse is the JSON shape of a product.
type ProductResponse struct {
	ID           int64           `json:"id"`
	RestaurantID int64           `json:"restaurantId"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Available    bool            `json:"available"`
}

func toProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID().Int64(),
		RestaurantID: p.RestaurantID().Int64(),
		Name:         p.Name(),
		Description:  p.Description(),
		Category:     p.Category(),
		Price:        p.Price(),
		Available:    p.IsAvailable(),
	}
}

// OrderLineResponse is one line of a placed order.
type OrderLineResponse struct {
	ProductID int64           `json:"productId"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse is the JSON shape of a freshly placed order, lines
// included.
type OrderResponse struct {
	ID           int64               `json:"id"`
	CustomerID   int64               `json:"customerId"`
	RestaurantID int64               `json:"restaurantId"`
	Lines        []OrderLineResponse `json:"items"`
	TotalValue   decimal.Decimal     `json:"totalValue"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	Notes        string              `json:"notes"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLineResponse{
			ProductID: line.ProductID().Int64(),
			UnitPrice: line.UnitPrice(),
			Quantity:  line.Quantity(),
			Subtotal:  line.Subtotal(),
		})
	}

	return OrderResponse{
		ID:           o.ID().Int64(),
		CustomerID:   o.CustomerID().Int64(),
		RestaurantID: o.RestaurantID().Int64(),
		Lines:        lines,
		TotalValue:   o.TotalValue(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
		Notes:        o.Notes(),
	}
}

// OrderSummaryResponse is one entry of an order listing. Lines are not
// part of listings.
type OrderSummaryResponse struct {
	ID           int64           `json:"id"`
	CustomerID   int64           `json:"customerId"`
	RestaurantID int64           `json:"restaurantId"`
	TotalValue   decimal.Decimal `json:"totalValue"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	Notes        string          `json:"notes"`
}

func toOrderSummaries(orders []queries.OrderResponse) []OrderSummaryResponse {
	summaries := make([]OrderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, OrderSummaryResponse{
			ID:           o.ID.Int64(),
			CustomerID:   o.CustomerID.Int64(),
			RestaurantID: o.RestaurantID.Int64(),
			TotalValue:   o.TotalValue,
			Status:       o.Status.String(),
			CreatedAt:    o.CreatedAt,
			Notes:        o.Notes,
		})
	}
	return summaries
}

// QuoteLineResponse is one priced basket line of a quote.
type QuoteLineResponse struct {
	ProductID int64           `json:"productId"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// QuoteResponse is the priced basket returned without placing an order.
type QuoteResponse struct {
	RestaurantID int64               `json:"restaurantId"`
	Lines        []QuoteLineResponse `json:"items"`
	DeliveryFee  decimal.Decimal     `json:"deliveryFee"`
	Total        decimal.Decimal     `json:"total"`
}

func toQuoteResponse(quote queries.OrderQuoteResponse) QuoteResponse {
	lines := make([]QuoteLineResponse, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		lines = append(lines, QuoteLineResponse{
			ProductID: line.ProductID.Int64(),
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal,
		})
	}

	return QuoteResponse{
		RestaurantID: quote.RestaurantID.Int64(),
		Lines:        lines,
		DeliveryFee:  quote.DeliveryFee,
		Total:        quote.Total,
	}
}

// SalesTotalResponse reports a restaurant's sales figures.
type SalesTotalResponse struct {
	RestaurantID int64           `json:"restaurantId"`
	OrderCount   int64           `json:"orderCount"`
	SalesTotal   decimal.Decimal `json:"salesTotal"`
}

func toSalesTotalResponse(total queries.RestaurantSalesTotalResponse) SalesTotalResponse {
	return SalesTotalResponse{
		RestaurantID: total.RestaurantID.Int64(),
		OrderCount:   total.OrderCount,
		SalesTotal:   total.SalesTotal,
	}
}

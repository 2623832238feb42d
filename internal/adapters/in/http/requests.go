package http

import "github.com/shopspring/decimal"

// RegisterCustomerRequest is the body of POST /api/v1/customers.
type RegisterCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SetActiveRequest toggles a customer's or restaurant's active flag.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// CreateRestaurantRequest is the body of POST /api/v1/restaurants.
// Rating is optional; zero means unrated and the default applies.
type CreateRestaurantRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Address     string          `json:"address"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Rating      decimal.Decimal `json:"rating"`
}

// SetRatingRequest is the body of PATCH /api/v1/restaurants/{id}/rating.
type SetRatingRequest struct {
	Rating decimal.Decimal `json:"rating"`
}

// CreateProductRequest is the body of POST /api/v1/products.
type CreateProductRequest struct {
	RestaurantID int64           `json:"restaurantId"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
}

// SetAvailabilityRequest is the body of PATCH /api/v1/products/{id}/availability.
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// OrderItemRequest is one basket entry in an order or quote request.
type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID   int64              `json:"customerId"`
	RestaurantID int64              `json:"restaurantId"`
	Notes        string             `json:"notes"`
	Items        []OrderItemRequest `json:"items"`
}

// QuoteOrderRequest is the body of POST /api/v1/orders/quote. The basket
// is priced without placing an order.
type QuoteOrderRequest struct {
	RestaurantID int64              `json:"restaurantId"`
	Items        []OrderItemRequest `json:"items"`
}

// ChangeOrderStatusRequest is the body of PATCH /api/v1/orders/{id}/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// CancelOrderRequest is the body of POST /api/v1/orders/{id}/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

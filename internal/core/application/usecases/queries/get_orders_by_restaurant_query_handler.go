package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByRestaurantQueryHandler retrieves a restaurant's orders from
// the database.
type GetOrdersByRestaurantQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByRestaurantQueryHandler creates a handler for restaurant
// order queries.
func NewGetOrdersByRestaurantQueryHandler(db *gorm.DB) GetOrdersByRestaurantQueryHandler {
	return GetOrdersByRestaurantQueryHandler{db: db}
}

// Handle returns the restaurant's orders, newest first.
func (h GetOrdersByRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByRestaurantQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE restaurant_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.RestaurantID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

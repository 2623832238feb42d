package queries

import (
	"context"

	"deliverytech/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetRestaurantSalesTotalQueryHandler computes a restaurant's sales
// figures in the database.
type GetRestaurantSalesTotalQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantSalesTotalQueryHandler creates a handler for sales
// total queries.
func NewGetRestaurantSalesTotalQueryHandler(db *gorm.DB) GetRestaurantSalesTotalQueryHandler {
	return GetRestaurantSalesTotalQueryHandler{db: db}
}

// Handle sums the totals of the restaurant's non-canceled orders.
// A restaurant without orders yields a zero count and a zero total.
func (h GetRestaurantSalesTotalQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantSalesTotalQuery,
) (RestaurantSalesTotalResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantSalesTotalResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*), COALESCE(SUM(total_value), 0)
		FROM orders
		WHERE restaurant_id = ? AND status != ?
	`, query.RestaurantID().Int64(), order.Canceled.String()).Row()

	var (
		count int64
		total decimal.Decimal
	)
	if err := row.Scan(&count, &total); err != nil {
		return RestaurantSalesTotalResponse{}, err
	}

	return RestaurantSalesTotalResponse{
		RestaurantID: query.RestaurantID(),
		OrderCount:   count,
		SalesTotal:   total,
	}, nil
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersAboveValueQueryHandler retrieves high-value orders from the
// database.
type GetOrdersAboveValueQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersAboveValueQueryHandler creates a handler for high-value
// order queries.
func NewGetOrdersAboveValueQueryHandler(db *gorm.DB) GetOrdersAboveValueQueryHandler {
	return GetOrdersAboveValueQueryHandler{db: db}
}

// Handle returns orders whose total meets or exceeds the minimum, highest
// total first.
func (h GetOrdersAboveValueQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersAboveValueQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE total_value >= ?
		ORDER BY total_value DESC, id DESC
	`, query.MinValue()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByPeriodQueryHandler retrieves orders created within a time
// window.
type GetOrdersByPeriodQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByPeriodQueryHandler creates a handler for period queries.
func NewGetOrdersByPeriodQueryHandler(db *gorm.DB) GetOrdersByPeriodQueryHandler {
	return GetOrdersByPeriodQueryHandler{db: db}
}

// Handle returns orders created within the window, newest first.
func (h GetOrdersByPeriodQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByPeriodQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE created_at BETWEEN ? AND ?
		ORDER BY created_at DESC, id DESC
	`, query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

package queries

import (
	"context"

	"deliverytech/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersInProgressQueryHandler retrieves in-flight orders from the
// database.
type GetOrdersInProgressQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersInProgressQueryHandler creates a handler for in-flight
// order queries.
func NewGetOrdersInProgressQueryHandler(db *gorm.DB) GetOrdersInProgressQueryHandler {
	return GetOrdersInProgressQueryHandler{db: db}
}

// Handle returns all orders in a non-terminal status, oldest first.
func (h GetOrdersInProgressQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersInProgressQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	inProgress := order.InProgressStatuses()
	statuses := make([]string, 0, len(inProgress))
	for _, s := range inProgress {
		statuses = append(statuses, s.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status IN ?
		ORDER BY created_at ASC, id ASC
	`, statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetTodaysOrdersQueryHandler retrieves today's orders from the database.
// "Today" starts at midnight in the handler's reference location; a nil
// location falls back to UTC, matching how timestamps are stored.
type GetTodaysOrdersQueryHandler struct {
	db  *gorm.DB
	loc *time.Location
}

// NewGetTodaysOrdersQueryHandler creates a handler for today's order
// queries. Midnight is computed in loc; pass nil for UTC.
func NewGetTodaysOrdersQueryHandler(db *gorm.DB, loc *time.Location) GetTodaysOrdersQueryHandler {
	if loc == nil {
		loc = time.UTC
	}
	return GetTodaysOrdersQueryHandler{db: db, loc: loc}
}

// Handle returns all orders created since midnight in the reference
// location, newest first.
func (h GetTodaysOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetTodaysOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().In(h.loc)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE created_at >= ?
		ORDER BY created_at DESC, id DESC
	`, midnight).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

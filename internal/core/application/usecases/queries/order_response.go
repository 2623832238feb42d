// Package queries contains read-only operations over the order store.
// Query handlers run raw SQL and return flat response structs; they never
// load aggregates or hold transactions.
package queries

import (
	"database/sql"
	"time"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderResponse is the shared read model for order listings. Lines are
// not included; listings are summaries.
type OrderResponse struct {
	ID           kernel.ID
	CustomerID   kernel.ID
	RestaurantID kernel.ID
	TotalValue   decimal.Decimal
	Status       order.Status
	CreatedAt    time.Time
	Notes        string
}

// orderColumns is the column list every order listing selects, in the
// order scanOrderRows reads them.
const orderColumns = `id, customer_id, restaurant_id, total_value, status, created_at, notes`

// scanOrderRows drains rows produced by a SELECT over orderColumns into
// response structs.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			resp       OrderResponse
			id         int64
			customerID int64
			restID     int64
			total      decimal.Decimal
			status     string
		)

		if err := rows.Scan(&id, &customerID, &restID, &total, &status, &resp.CreatedAt, &resp.Notes); err != nil {
			return nil, err
		}

		parsedStatus, err := order.ParseStatus(status)
		if err != nil {
			return nil, err
		}

		resp.ID = kernel.ID(id)
		resp.CustomerID = kernel.ID(customerID)
		resp.RestaurantID = kernel.ID(restID)
		resp.TotalValue = total
		resp.Status = parsedStatus
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

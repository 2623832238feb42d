package queries

import (
	"errors"

	"deliverytech/internal/pkg/guard"
)

var ErrGetTodaysOrdersQueryIsNotConstructed = errors.New(
	"GetTodaysOrdersQuery must be created via NewGetTodaysOrdersQuery constructor",
)

// GetTodaysOrdersQuery retrieves all orders created since midnight UTC.
type GetTodaysOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTodaysOrdersQuery creates a query for today's orders.
// This is a parameterless query.
func NewGetTodaysOrdersQuery() GetTodaysOrdersQuery {
	return GetTodaysOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTodaysOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetTodaysOrdersQueryIsNotConstructed)
}

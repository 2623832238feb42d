package queries

import (
	"errors"

	"deliverytech/internal/pkg/guard"
)

var ErrGetOrdersInProgressQueryIsNotConstructed = errors.New(
	"GetOrdersInProgressQuery must be created via NewGetOrdersInProgressQuery constructor",
)

// GetOrdersInProgressQuery retrieves every order that is not yet in a
// terminal status. Kitchens work the oldest orders first, so results are
// oldest-first.
type GetOrdersInProgressQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersInProgressQuery creates a query for in-flight orders.
// This is a parameterless query.
func NewGetOrdersInProgressQuery() GetOrdersInProgressQuery {
	return GetOrdersInProgressQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersInProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersInProgressQueryIsNotConstructed)
}

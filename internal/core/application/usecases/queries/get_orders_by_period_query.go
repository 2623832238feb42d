package queries

import (
	"errors"
	"time"

	"deliverytech/internal/pkg/errs"
	"deliverytech/internal/pkg/guard"
)

var ErrGetOrdersByPeriodQueryIsNotConstructed = errors.New(
	"GetOrdersByPeriodQuery must be created via NewGetOrdersByPeriodQuery constructor",
)

// GetOrdersByPeriodQuery retrieves orders created within a time window.
// Both bounds are inclusive.
type GetOrdersByPeriodQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersByPeriodQuery creates a query for orders created between
// from and to. Both bounds are required and from must not be after to.
func NewGetOrdersByPeriodQuery(from, to time.Time) (GetOrdersByPeriodQuery, error) {
	if from.IsZero() {
		return GetOrdersByPeriodQuery{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return GetOrdersByPeriodQuery{}, errs.NewValueIsRequiredError("to")
	}
	if from.After(to) {
		return GetOrdersByPeriodQuery{}, errs.NewValueIsInvalidError("period")
	}

	return GetOrdersByPeriodQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByPeriodQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByPeriodQueryIsNotConstructed)
}

// From returns the inclusive lower bound of the window.
func (q GetOrdersByPeriodQuery) From() time.Time {
	return q.from
}

// To returns the inclusive upper bound of the window.
func (q GetOrdersByPeriodQuery) To() time.Time {
	return q.to
}

package queries

import (
	"errors"

	"deliverytech/internal/pkg/errs"
	"deliverytech/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersAboveValueQueryIsNotConstructed = errors.New(
	"GetOrdersAboveValueQuery must be created via NewGetOrdersAboveValueQuery constructor",
)

// GetOrdersAboveValueQuery retrieves orders whose total meets or exceeds
// a minimum value.
type GetOrdersAboveValueQuery struct {
	minValue decimal.Decimal

	guard guard.ConstructorGuard
}

// NewGetOrdersAboveValueQuery creates a query for high-value orders.
// The minimum must not be negative.
func NewGetOrdersAboveValueQuery(minValue decimal.Decimal) (GetOrdersAboveValueQuery, error) {
	if minValue.IsNegative() {
		return GetOrdersAboveValueQuery{}, errs.NewValueIsInvalidErrorWithCause("minValue is invalid",
			errors.New(minValue.String()+" is negative"))
	}

	return GetOrdersAboveValueQuery{
		minValue: minValue,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersAboveValueQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersAboveValueQueryIsNotConstructed)
}

// MinValue returns the inclusive minimum order total.
func (q GetOrdersAboveValueQuery) MinValue() decimal.Decimal {
	return q.minValue
}

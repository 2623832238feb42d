package queries

import (
	"errors"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/pkg/errs"
	"deliverytech/internal/pkg/guard"
)

var ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
)

// GetOrdersByCustomerQuery retrieves a customer's order history,
// newest first.
type GetOrdersByCustomerQuery struct {
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a query for a customer's orders.
func NewGetOrdersByCustomerQuery(customerID kernel.ID) (GetOrdersByCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersByCustomerQuery{}, errs.NewValueIsInvalidErrorWithCause("customerId is invalid", err)
	}

	return GetOrdersByCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetOrdersByCustomerQuery) CustomerID() kernel.ID {
	return q.customerID
}

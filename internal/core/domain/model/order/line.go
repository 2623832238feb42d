package order

import (
	"errors"
	"fmt"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLineIsNotConstructed is returned when a Line was not created via NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is an order line: a product reference with the unit price captured
// at ordering time and a positive quantity. Lines are value objects; once
// attached to an order they never change.
//
// The unit price is a snapshot. Later catalog price changes do not affect
// orders that were already placed.
type Line struct {
	productID kernel.ID
	unitPrice decimal.Decimal
	quantity  int

	isConstructed bool
}

// NewLine creates an order line.
//
// Returns a validation error if the product identifier is unassigned,
// the unit price is not positive, or the quantity is below 1.
func NewLine(productID kernel.ID, unitPrice decimal.Decimal, quantity int) (Line, error) {
	line := Line{isConstructed: true}

	if err := errors.Join(
		line.setProductID(productID),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line was created via NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ProductID returns the ordered product's identifier.
func (l Line) ProductID() kernel.ID {
	return l.productID
}

// UnitPrice returns the product price captured when the order was placed.
func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Quantity returns the ordered quantity (always ≥ 1).
func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns unit price × quantity, unrounded. Monetary rounding
// happens once at the order total, not per line.
func (l Line) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

func (l *Line) setProductID(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("productId is invalid", err)
	}
	l.productID = productID
	return nil
}

func (l *Line) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			errors.New(unitPrice.String()+" is not greater than 0"))
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

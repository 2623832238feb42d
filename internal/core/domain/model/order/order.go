package order

import (
	"errors"
	"strings"
	"time"

	"deliverytech/internal/core/domain/model/kernel"
	"deliverytech/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when attempting to assign an
	// identifier to an order that already has one.
	ErrOrderIDAlreadyAssigned = errors.New("order already has an identifier")
)

// canceledNoteSeparator is the marker appended to the notes field when an
// order is canceled, followed by the cancellation reason.
const canceledNoteSeparator = " | CANCELED: "

// Order represents a customer's order at a restaurant. It is the aggregate
// root that owns the computed total, the ordered lines, and the status
// workflow.
//
// Order follows these invariants:
//   - References a customer and a restaurant by identifier
//   - Has at least one line
//   - The total value is fixed at creation (lines subtotal + delivery fee,
//     rounded to 2 decimal places) and never recomputed
//   - The status only changes through the transitions defined by Status
//   - Orders are never deleted; cancellation is a status, not a removal
//
// The version field is an optimistic concurrency counter. Repositories use
// it to guarantee that two concurrent transitions from the same source
// status cannot both commit.
type Order struct {
	id           kernel.ID
	customerID   kernel.ID
	restaurantID kernel.ID
	lines        []Line
	totalValue   decimal.Decimal
	status       Status
	createdAt    time.Time
	notes        string
	version      int

	isConstructed bool
}

// NewOrder creates a new order in Pending status with the supplied
// pre-computed total. The identifier stays unassigned until the repository
// stores the order.
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: validation error if a reference is invalid, lines are empty,
//     or the total is negative
func NewOrder(
	customerID, restaurantID kernel.ID,
	notes string,
	lines []Line,
	totalValue decimal.Decimal,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		notes:         strings.TrimSpace(notes),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setLines(lines),
		order.setTotalValue(totalValue),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from its persisted state.
// Used by repositories when loading from the database.
func RestoreOrder(
	id, customerID, restaurantID kernel.ID,
	lines []Line,
	totalValue decimal.Decimal,
	status Status,
	createdAt time.Time,
	notes string,
	version int,
) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	order, err := NewOrder(customerID, restaurantID, notes, lines, totalValue)
	if err != nil {
		return nil, err
	}

	order.id = id
	order.status = status
	order.createdAt = createdAt
	order.notes = notes
	order.version = version
	return order, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier on a newly persisted
// order. Fails if an identifier was already assigned.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() {
		return ErrOrderIDAlreadyAssigned
	}

	o.id = id
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier (zero until persisted).
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant the order was
// placed at.
func (o *Order) RestaurantID() kernel.ID {
	return o.restaurantID
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// TotalValue returns the order total computed at creation time
// (2 decimal places).
func (o *Order) TotalValue() decimal.Decimal {
	return o.totalValue
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Notes returns the free-text notes, including any appended cancellation
// reason.
func (o *Order) Notes() string {
	return o.notes
}

// Version returns the optimistic concurrency counter.
func (o *Order) Version() int {
	return o.version
}

// BumpVersion advances the optimistic concurrency counter. Called by the
// repository after a successful guarded write so the in-memory aggregate
// matches the stored row.
func (o *Order) BumpVersion() {
	o.version++
}

// ChangeStatus transitions the order to the target status.
//
// The transition must be legal per the Status state machine; otherwise a
// BusinessRuleError is returned and the order is left unchanged. Any
// transition out of Delivered or Canceled fails, including re-applying
// the current status.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Confirm transitions the order from Pending to Confirmed.
func (o *Order) Confirm() error {
	return o.ChangeStatus(Confirmed)
}

// StartPreparing transitions the order from Confirmed to Preparing.
func (o *Order) StartPreparing() error {
	return o.ChangeStatus(Preparing)
}

// MarkDelivered transitions the order from Preparing to Delivered.
func (o *Order) MarkDelivered() error {
	return o.ChangeStatus(Delivered)
}

// Cancel cancels the order and appends the reason to the notes field.
//
// Rules:
//   - The reason must not be blank (ValueIsRequiredError)
//   - A Delivered order cannot be canceled (BusinessRuleError)
//   - Canceling an already-Canceled order is a no-op: the order is
//     returned unchanged, unlike the generic transition rejection
//     applied to terminal statuses
func (o *Order) Cancel(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	if o.status == Delivered {
		return errs.NewBusinessRuleError("cannot cancel an order that was already delivered")
	}

	// Cancellation is idempotent.
	if o.status == Canceled {
		return nil
	}

	o.status = Canceled
	o.notes += canceledNoteSeparator + strings.TrimSpace(reason)
	return nil
}

func (o *Order) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerId is invalid", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId is invalid", err)
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setTotalValue(totalValue decimal.Decimal) error {
	if totalValue.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total value is invalid",
			errors.New(totalValue.String()+" is negative"))
	}
	o.totalValue = totalValue
	return nil
}

package order

import (
	"fmt"

	"deliverytech/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Delivered
//	   │            │             │
//	   └────────────┴─────────────┴──> Canceled
//
// Delivered and Canceled are terminal: no transition leaves them,
// including re-applying the same status.
//
// Status is a closed enum. Values arriving from the outside (HTTP, the
// database) must pass through ParseStatus or Validate; unknown values are
// rejected, never silently defaulted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every created order.
	Pending

	// Confirmed indicates the restaurant accepted the order.
	Confirmed

	// Preparing indicates the kitchen started working on the order.
	Preparing

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Canceled indicates the order was canceled with a reason. Terminal.
	Canceled
)

// getStatusStrings returns a map of Status values to their wire names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		Delivered: "DELIVERED",
		Canceled:  "CANCELED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Preparing: "PREPARING",
		Delivered: "DELIVERED",
		Canceled:  "CANCELED",
	}
}

// transitions returns the legal transition table. A (from, to) pair is
// legal iff to appears in the slice keyed by from.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Canceled},
		Confirmed: {Preparing, Canceled},
		Preparing: {Delivered, Canceled},
		Delivered: {},
		Canceled:  {},
	}
}

// ParseStatus converts a wire name ("PENDING", "CONFIRMED", ...) into a
// Status. Unknown names are rejected with a ValueIsInvalidError.
func ParseStatus(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", value))
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// CanTransitionTo reports whether the transition to target is in the
// legal transition table. Success is determined purely by the
// (current, target) pair.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo transitions the status to target.
//
// Returns:
//   - (target, nil) when the transition is legal
//   - (0, ValueIsInvalidError) when target is not a valid status
//   - (0, BusinessRuleError) when the transition is not in the table,
//     including any transition out of a terminal status
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewBusinessRuleErrorWithCause("status transition is not allowed",
			fmt.Errorf("%s cannot change to %s", s, target))
	}

	return target, nil
}

// InProgressStatuses returns the statuses of orders that are still being
// worked on: Pending, Confirmed and Preparing.
func InProgressStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing}
}

// Package order provides domain entities and business logic for order
// management in the food-delivery marketplace. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root owning the computed total, lines and lifecycle
//   - Line: a value object pairing a product reference with a price snapshot
//     and a positive quantity
//   - Status: a state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders reference a customer and a restaurant and carry at least one line
//   - The total is computed once at creation and never recomputed
//   - Status follows the workflow Pending -> Confirmed -> Preparing -> Delivered,
//     with cancellation possible from any non-terminal status
//   - Cancellation requires a reason, is rejected after delivery, and is
//     idempotent when the order is already canceled
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

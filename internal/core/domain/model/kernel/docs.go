// Package kernel contains shared domain primitives used across all
// aggregates: entity identifiers and monetary scale conventions.
//
// Identifiers are opaque 64-bit integers assigned by the backing store.
// The ID value object distinguishes assigned identifiers (positive) from
// the unassigned zero value carried by aggregates that have not been
// persisted yet.
//
// Monetary values use exact decimal arithmetic (shopspring/decimal).
// Rounding to the 2-decimal-place monetary scale is applied once, at the
// final total of a computation, never per intermediate step.
package kernel

// Package services contains domain services: logic that spans several
// aggregates and therefore does not belong to any one of them.
//
// OrderPricer resolves requested items against the product catalog and
// computes order totals. OrderValidator checks that the customer and the
// restaurant of a new order are both active. Order creation and order
// quoting share these services, which keeps a quote byte-identical to the
// total a real order would be stored with.
package services

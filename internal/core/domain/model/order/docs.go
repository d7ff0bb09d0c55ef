// Package order contains the Order aggregate used for carts and checkout.
//
// A customer's pending Order is their cart. AddItem merges lines per product,
// Checkout flips the order to completed exactly once. Completed orders are
// immutable.
package order

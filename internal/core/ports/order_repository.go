// Package ports declares the contracts between the use cases and the
// adapters: repositories, the unit of work and external integrations.
package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
)

// OrderRepository persists Order aggregates together with their items.
type OrderRepository interface {
	// Add stores a new order and all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with its items, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOldestPending returns the customer's oldest pending order with its
	// row locked, or an ObjectNotFoundError when the customer has no cart.
	GetOldestPending(ctx context.Context, customerID kernel.UUID) (*order.Order, error)

	// AddItemQuantity atomically adds quantity to the (order, product) line,
	// inserting the line when it does not exist. The line id is taken from
	// aggregate. It never replaces an existing quantity. A ConflictError is
	// returned when the stored order is no longer pending.
	AddItemQuantity(ctx context.Context, aggregate *order.Order, productID kernel.UUID, quantity int) error

	// CompleteIfPending flips the stored status from pending to completed.
	// A ConflictError is returned when no pending row was changed.
	CompleteIfPending(ctx context.Context, aggregate *order.Order) error

	// DeletePending removes a pending order with its items and missions.
	// A ConflictError is returned when no pending row was removed.
	DeletePending(ctx context.Context, aggregate *order.Order) error
}

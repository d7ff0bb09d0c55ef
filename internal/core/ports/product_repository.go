package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/catalog"
	"dronedelivery/internal/core/domain/model/kernel"
)

type ProductRepository interface {
	Add(ctx context.Context, product *catalog.Product) error

	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// DecrementStock subtracts quantity with a relative update and returns the
	// remaining stock, which may be negative.
	DecrementStock(ctx context.Context, id kernel.UUID, quantity int) (int, error)
}

package commands

import (
	"errors"

	"dronedelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a catalog entry. It backs the seed command.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	price       decimal.Decimal
	stock       int

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(name, description string, price decimal.Decimal, stock int) (CreateProductCommand, error) {
	if err := required("name", name); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Description() string {
	return c.description
}

func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

func (c CreateProductCommand) Stock() int {
	return c.stock
}

package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

// CheckoutCommand completes a pending order owned by the requester.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	requester identity.Requester
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

func NewCheckoutCommand(requester identity.Requester, orderID kernel.UUID) (CheckoutCommand, error) {
	if err := errors.Join(requester.Validate(), orderID.Validate()); err != nil {
		return CheckoutCommand{}, err
	}

	return CheckoutCommand{
		requester: requester,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) Requester() identity.Requester {
	return c.requester
}

func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

// DeleteOrderCommand discards a pending order owned by the requester.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	requester identity.Requester
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

func NewDeleteOrderCommand(requester identity.Requester, orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := errors.Join(requester.Validate(), orderID.Validate()); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		requester: requester,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) Requester() identity.Requester {
	return c.requester
}

func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

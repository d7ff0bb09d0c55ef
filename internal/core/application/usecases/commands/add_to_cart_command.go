package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// AddToCartCommand adds quantity units of a product to the requester's cart.
//
// Example:
//
//	cmd, err := NewAddToCartCommand(requester, productID, 2)
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	requester identity.Requester
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// NewAddToCartCommand validates the request shape. Quantity must be positive.
func NewAddToCartCommand(requester identity.Requester, productID kernel.UUID, quantity int) (AddToCartCommand, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidError("quantity")
	}

	if err := errors.Join(requester.Validate(), productID.Validate(), quantityErr); err != nil {
		return AddToCartCommand{}, err
	}

	return AddToCartCommand{
		requester: requester,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

func (c AddToCartCommand) Requester() identity.Requester {
	return c.requester
}

func (c AddToCartCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c AddToCartCommand) Quantity() int {
	return c.quantity
}

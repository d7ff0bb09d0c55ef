package commands

import (
	"errors"
	"fmt"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// OrderLine is one requested product of a new order.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand places a new pending order with nested items.
// Lines naming the same product are merged by summing their quantities.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	requester identity.Requester
	lines     []OrderLine

	guard guard.ConstructorGuard
}

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

func NewCreateOrderCommand(requester identity.Requester, lines []OrderLine) (CreateOrderCommand, error) {
	problems := []error{requester.Validate()}
	for i, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].productId", i), err))
		}
		if line.Quantity <= 0 {
			problems = append(problems, errs.NewValueIsInvalidError(fmt.Sprintf("items[%d].quantity", i)))
		}
	}

	if err := errors.Join(problems...); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		requester: requester,
		lines:     append([]OrderLine(nil), lines...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Requester() identity.Requester {
	return c.requester
}

func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

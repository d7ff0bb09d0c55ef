package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/domain/services"
)

// CreateOrderCommandHandler stores a new pending order. Every product must
// exist; stock is not checked until checkout.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	access     services.AccessPolicy
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		access:     services.NewAccessPolicy(),
	}
}

// Handle returns the id of the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	requester := cmd.Requester()
	if err := h.access.RequireCustomer(requester, "create order"); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), requester.ID)
	if err != nil {
		return kernel.UUID{}, err
	}

	for _, line := range cmd.Lines() {
		if err = aggregate.AddItem(line.ProductID, line.Quantity); err != nil {
			return kernel.UUID{}, err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	for _, item := range aggregate.Items() {
		if _, err = productRepo.Get(ctx, item.ProductID()); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}

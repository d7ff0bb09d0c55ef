package commands

import (
	"context"

	"dronedelivery/internal/core/domain/services"
)

// DeleteOrderCommandHandler removes a cart together with its items and any
// missions created for it. Completed orders are kept and yield a
// ConflictError.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	access     services.AccessPolicy
}

func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		access:     services.NewAccessPolicy(),
	}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.access.RequireOrderOwner(cmd.Requester(), aggregate, "delete"); err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.DeletePending(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/domain/services"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"
)

// AddToCartCommandHandler finds or creates the customer's pending order and
// increments the (order, product) line.
//
// Locks are taken customer row first, then the cart row, so concurrent calls
// for one customer cannot both create a cart and a checkout holding the cart
// cannot be interleaved with an increment. The increment itself is a single
// upsert and never replaces a stored quantity.
type AddToCartCommandHandler struct {
	uowFactory UoWFactory
	access     services.AccessPolicy
}

func NewAddToCartCommandHandler(uowFactory UoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
		access:     services.NewAccessPolicy(),
	}
}

// Handle returns the id of the cart the item was added to.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	requester := cmd.Requester()
	if err := h.access.RequireCustomer(requester, "add to cart"); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.UserRepository().Lock(ctx, requester.ID); err != nil {
		return kernel.UUID{}, err
	}

	if _, err := uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return kernel.UUID{}, err
	}

	orderRepo := uow.OrderRepository()

	cart, err := h.pendingOrder(ctx, orderRepo, requester.ID)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = cart.AddItem(cmd.ProductID(), cmd.Quantity()); err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.AddItemQuantity(ctx, cart, cmd.ProductID(), cmd.Quantity()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return cart.ID(), nil
}

// pendingOrder returns the oldest pending order, creating an empty one when
// the customer has none.
func (h *AddToCartCommandHandler) pendingOrder(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	customerID kernel.UUID,
) (*order.Order, error) {
	cart, err := orderRepo.GetOldestPending(ctx, customerID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	cart, err = order.NewOrder(kernel.NewUUID(), customerID)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

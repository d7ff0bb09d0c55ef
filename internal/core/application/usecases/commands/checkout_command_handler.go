package commands

import (
	"context"
	"log/slog"

	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/domain/services"
	"dronedelivery/internal/core/ports"
)

// CheckoutCommandHandler flips an order to completed and decrements stock
// for every line, all inside one transaction.
//
// The order row is read with a lock and the status change is a
// compare-and-set, so of two concurrent checkouts exactly one succeeds and
// the other gets a ConflictError. Stock has no floor.
//
// After the commit the order is forwarded to the OrderGateway. Gateway
// failures are logged and never fail the checkout.
type CheckoutCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.OrderGateway
	access     services.AccessPolicy
	logger     *slog.Logger
}

func NewCheckoutCommandHandler(
	uowFactory UoWFactory,
	gateway ports.OrderGateway,
	logger *slog.Logger,
) CheckoutCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		access:     services.NewAccessPolicy(),
		logger:     logger.With("component", "checkout"),
	}
}

func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	completed, err := h.complete(ctx, cmd)
	if err != nil {
		return err
	}

	h.forward(ctx, completed)

	return nil
}

func (h *CheckoutCommandHandler) complete(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.access.RequireOrderOwner(cmd.Requester(), aggregate, "checkout"); err != nil {
		return nil, err
	}

	if err = aggregate.Checkout(); err != nil {
		return nil, err
	}

	if err = orderRepo.CompleteIfPending(ctx, aggregate); err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	for _, item := range aggregate.Items() {
		remaining, decErr := productRepo.DecrementStock(ctx, item.ProductID(), item.Quantity())
		if decErr != nil {
			return nil, decErr
		}

		if remaining < 0 {
			h.logger.WarnContext(ctx, "stock went negative",
				"order_id", aggregate.ID().String(),
				"product_id", item.ProductID().String(),
				"stock", remaining,
			)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *CheckoutCommandHandler) forward(ctx context.Context, completed *order.Order) {
	if h.gateway == nil {
		return
	}

	submission := ports.OrderSubmission{
		OrderID:    completed.ID(),
		CustomerID: completed.CustomerID(),
	}
	for _, item := range completed.Items() {
		submission.Lines = append(submission.Lines, ports.OrderSubmissionLine{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
		})
	}

	confirmation, err := h.gateway.PlaceOrder(ctx, submission)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to forward order",
			"order_id", completed.ID().String(),
			"error", err,
		)
		return
	}

	h.logger.InfoContext(ctx, "order forwarded",
		"order_id", completed.ID().String(),
		"confirmation", confirmation.Number,
	)
}

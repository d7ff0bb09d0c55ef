package queries

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order. Only its owner may see it.
type GetOrderQuery struct {
	requester identity.Requester
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(requester identity.Requester, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(requester.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{requester: requester, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Requester() identity.Requester {
	return q.requester
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns NotFound for a missing order and Forbidden when the
// requester does not own it.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	resp, id, err := h.find(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	if !resp.CustomerID.IsEqual(query.Requester().ID) {
		return OrderResponse{}, errs.NewForbiddenError("read order " + resp.ID.String())
	}

	orders := []OrderResponse{resp}
	if err = withItems(ctx, h.db, orders, []uuid.UUID{id}); err != nil {
		return OrderResponse{}, err
	}

	return orders[0], nil
}

func (h GetOrderQueryHandler) find(ctx context.Context, orderID kernel.UUID) (OrderResponse, uuid.UUID, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, uuid.Nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, uuid.Nil, err
		}
		return OrderResponse{}, uuid.Nil, errs.NewObjectNotFoundError("order", orderID.String())
	}

	return scanOrder(rows)
}

package queries

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery returns the requester's own orders, newest first.
type ListOrdersQuery struct {
	requester identity.Requester

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(requester identity.Requester) (ListOrdersQuery, error) {
	if err := requester.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{requester: requester, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Requester() identity.Requester {
	return q.requester
}

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC, o.id DESC
	`, query.Requester().ID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		resp, id, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	_ = rows.Close()

	if err = withItems(ctx, h.db, orders, ids); err != nil {
		return nil, err
	}

	return orders, nil
}

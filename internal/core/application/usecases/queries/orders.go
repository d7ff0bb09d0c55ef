package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderColumns must match scanOrder.
const orderColumns = "o.id, o.customer_id, o.status, o.created_at, o.updated_at"

func scanOrder(rows *sql.Rows) (OrderResponse, uuid.UUID, error) {
	var (
		resp       OrderResponse
		id         uuid.UUID
		customerID uuid.UUID
	)

	if err := rows.Scan(&id, &customerID, &resp.Status, &resp.CreatedAt, &resp.UpdatedAt); err != nil {
		return OrderResponse{}, uuid.Nil, err
	}

	var err error
	if resp.ID, err = toUUID(id); err != nil {
		return OrderResponse{}, uuid.Nil, err
	}
	if resp.CustomerID, err = toUUID(customerID); err != nil {
		return OrderResponse{}, uuid.Nil, err
	}

	return resp, id, nil
}

// withItems fills Items of every order, keeping the slice order.
func withItems(ctx context.Context, db *gorm.DB, orders []OrderResponse, ids []uuid.UUID) error {
	items, err := loadItems(ctx, db, ids)
	if err != nil {
		return err
	}

	for i := range orders {
		orders[i].Items = items[ids[i]]
		if orders[i].Items == nil {
			orders[i].Items = make([]OrderItemResponse, 0)
		}
	}

	return nil
}

package queries

import (
	"context"
	"database/sql"

	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

// productColumns must match scanProduct.
const productColumns = "p.id, p.name, p.description, p.price, p.stock"

func scanProduct(rows *sql.Rows, extra ...any) (ProductResponse, error) {
	var (
		resp ProductResponse
		id   uuid.UUID
	)

	dest := append([]any{&id, &resp.Name, &resp.Description, &resp.Price, &resp.Stock}, extra...)
	if err := rows.Scan(dest...); err != nil {
		return ProductResponse{}, err
	}

	productID, err := toUUID(id)
	if err != nil {
		return ProductResponse{}, err
	}
	resp.ID = productID

	return resp, nil
}

// loadItems returns the lines of every order in orderIDs keyed by order id,
// each with its product embedded.
func loadItems(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]OrderItemResponse, error) {
	items := make(map[uuid.UUID][]OrderItemResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return items, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			`+productColumns+`,
			i.id,
			i.order_id,
			i.quantity
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id IN ?
		ORDER BY i.order_id, i.line_no, i.id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item    OrderItemResponse
			itemID  uuid.UUID
			orderID uuid.UUID
		)

		product, scanErr := scanProduct(rows, &itemID, &orderID, &item.Quantity)
		if scanErr != nil {
			return nil, scanErr
		}
		item.Product = product

		if item.ID, err = toUUID(itemID); err != nil {
			return nil, err
		}

		items[orderID] = append(items[orderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

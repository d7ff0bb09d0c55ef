// Package orderrepo maps the Order aggregate to the orders and order_items tables.
package orderrepo

import (
	"time"

	"dronedelivery/internal/adapters/out/storage/productrepo"
	"dronedelivery/internal/adapters/out/storage/userrepo"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type OrderDTO struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID         `gorm:"type:uuid;not null;index:idx_orders_customer_status,priority:1"`
	Customer   *userrepo.UserDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Status     string            `gorm:"type:varchar(16);not null;default:'pending';index:idx_orders_customer_status,priority:2"`
	Items      []ItemDTO         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time         `gorm:"not null"`
	UpdatedAt  time.Time         `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is an order line. LineNo keeps the insertion order of the aggregate.
type ItemDTO struct {
	ID        uuid.UUID               `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_product,priority:1"`
	ProductID uuid.UUID               `gorm:"type:uuid;not null;index;uniqueIndex:idx_order_items_order_product,priority:2"`
	Product   *productrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity  int                     `gorm:"type:int;not null"`
	LineNo    int                     `gorm:"type:int;not null;default:0"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := make([]ItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, itemFromDomain(orderID, item, i))
	}

	return OrderDTO{
		ID:         orderID,
		CustomerID: o.CustomerID().Bytes(),
		Status:     o.Status().String(),
		Items:      items,
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

func itemFromDomain(orderID uuid.UUID, item *order.Item, lineNo int) ItemDTO {
	return ItemDTO{
		ID:        item.ID().Bytes(),
		OrderID:   orderID,
		ProductID: item.ProductID().Bytes(),
		Quantity:  item.Quantity(),
		LineNo:    lineNo,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.RestoreItem(itemID, productID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, status, items, dto.CreatedAt, dto.UpdatedAt)
}

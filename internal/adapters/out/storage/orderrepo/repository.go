package orderrepo

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewObjectNotFoundErrorWithCause("customer or product", aggregate.ID().String(), err)
		}
		return err
	}

	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetOldestPending locks the returned order row until the transaction ends.
func (r *GormOrderRepository) GetOldestPending(ctx context.Context, customerID kernel.UUID) (*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ? AND status = ?", customerID.Bytes(), order.Pending.String()).
		Order("created_at").
		Order("id").
		Limit(1).
		Find(&dto)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("pending order of customer", customerID.String())
	}

	if err := r.loadItems(ctx, &dto); err != nil {
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormOrderRepository) AddItemQuantity(
	ctx context.Context,
	aggregate *order.Order,
	productID kernel.UUID,
	quantity int,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	lineNo := -1
	var line *order.Item
	for i, item := range aggregate.Items() {
		if item.ProductID().IsEqual(productID) {
			lineNo, line = i, item
			break
		}
	}
	if line == nil {
		return errs.NewObjectNotFoundError("order item", productID.String())
	}

	db := r.db.WithContext(ctx)

	// The guarded touch takes the order row lock before the line changes.
	touched := db.Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), order.Pending.String()).
		Update("updated_at", aggregate.UpdatedAt())
	if touched.Error != nil {
		return touched.Error
	}
	if touched.RowsAffected == 0 {
		return errs.NewConflictError("order", "is no longer pending")
	}

	dto := itemFromDomain(aggregate.ID().Bytes(), line, lineNo)
	dto.Quantity = quantity

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "order_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("order_items.quantity + excluded.quantity"),
		}),
	}).Create(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewObjectNotFoundErrorWithCause("product", productID.String(), err)
		}
		return err
	}

	return nil
}

func (r *GormOrderRepository) CompleteIfPending(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.Status() != order.Completed {
		return errs.NewValueIsInvalidError("order must be completed before it is stored as completed")
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), order.Pending.String()).
		Updates(map[string]any{
			"status":     order.Completed.String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", "is already completed")
	}

	return nil
}

// DeletePending removes a pending order. Items and missions go with it
// through the foreign keys.
func (r *GormOrderRepository) DeletePending(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), order.Pending.String()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", "is no longer pending")
	}

	return nil
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	if err := r.loadItems(ctx, &dto); err != nil {
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormOrderRepository) loadItems(ctx context.Context, dto *OrderDTO) error {
	return r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("line_no").
		Order("id").
		Find(&dto.Items).Error
}

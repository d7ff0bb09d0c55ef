package productrepo

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/catalog"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Add(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := fromDomain(product)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormProductRepository) DecrementStock(ctx context.Context, id kernel.UUID, quantity int) (int, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	db := r.db.WithContext(ctx)
	result := db.Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, errs.NewObjectNotFoundError("product", id.String())
	}

	var stock int
	if err := db.Model(&ProductDTO{}).Select("stock").Where("id = ?", id.Bytes()).Scan(&stock).Error; err != nil {
		return 0, err
	}
	return stock, nil
}

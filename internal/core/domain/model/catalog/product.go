package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	MaxNameLength = 255
	// PriceScale is the number of decimal places kept for prices.
	PriceScale = 2
	// MaxPriceDigits bounds the total number of digits of a price.
	MaxPriceDigits = 10
)

// ErrProductIsNotConstructed is returned by Validate on a zero-value Product.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

var maxPrice = decimal.New(1, MaxPriceDigits-PriceScale).Sub(decimal.New(1, -PriceScale))

// Product is a catalog entry. Stock is only changed by checkout, which may
// drive it below zero; RestoreProduct therefore accepts negative stock.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	stock       int
	guard       guard.ConstructorGuard
}

// NewProduct validates a new catalog entry. Price is rounded to cents.
func NewProduct(id kernel.UUID, name, description string, price decimal.Decimal, stock int) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setInitialStock(stock),
	); err != nil {
		return nil, err
	}
	p.description = description

	return p, nil
}

// RestoreProduct rebuilds a Product loaded from storage.
func RestoreProduct(id kernel.UUID, name, description string, price decimal.Decimal, stock int) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}
	p.description = description
	p.stock = stock

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) Stock() int {
	return p.stock
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	price = price.Round(PriceScale)
	if price.IsNegative() || price.GreaterThan(maxPrice) {
		return errs.NewValueIsOutOfRangeError("price", price.StringFixed(PriceScale), "0.00", maxPrice.StringFixed(PriceScale))
	}
	p.price = price
	return nil
}

func (p *Product) setInitialStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock is invalid", fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}

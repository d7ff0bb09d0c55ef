package order

import (
	"errors"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned by Validate on a zero-value Order.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the cart and checkout flow. A pending order
// is the customer's cart; once completed it is frozen: the status never goes
// back and item quantities no longer change.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	status     Status
	items      []*Item
	createdAt  time.Time
	updatedAt  time.Time
	guard      guard.ConstructorGuard
}

// NewOrder creates an empty pending order owned by customerID.
func NewOrder(id kernel.UUID, customerID kernel.UUID) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(o.setID(id), o.setCustomerID(customerID)); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an Order loaded from storage.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	status Status,
	items []*Item,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		status.Validate(),
		o.setItems(items),
	); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns the order lines in insertion order. The slice is a copy.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Item returns the line for productID, or nil.
func (o *Order) Item(productID kernel.UUID) *Item {
	for _, item := range o.items {
		if item.productID.IsEqual(productID) {
			return item
		}
	}
	return nil
}

// IsOwnedBy reports whether customerID placed this order.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// AddItem increments the quantity of productID by quantity, creating the line
// on first use. Completed orders reject the call with a conflict.
func (o *Order) AddItem(productID kernel.UUID, quantity int) error {
	if o.status.IsTerminal() {
		return errs.NewConflictError("order", "is completed, items cannot change")
	}

	if existing := o.Item(productID); existing != nil {
		if err := existing.increase(quantity); err != nil {
			return err
		}
		o.touch()
		return nil
	}

	item, err := NewItem(kernel.NewUUID(), productID, quantity)
	if err != nil {
		return err
	}
	o.items = append(o.items, item)
	o.touch()
	return nil
}

// Checkout moves the order to Completed.
func (o *Order) Checkout() error {
	next, err := o.status.Complete()
	if err != nil {
		return err
	}
	o.status = next
	o.touch()
	return nil
}

// Cancel checks that the order is still a cart and may be discarded.
func (o *Order) Cancel() error {
	if o.status.IsTerminal() {
		return errs.NewConflictError("order", "is completed and cannot be deleted")
	}
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.productID]; dup {
			return errs.NewValueIsInvalidError("items contain a duplicated product")
		}
		seen[item.productID] = struct{}{}
	}
	o.items = items
	return nil
}

package order

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the newItem factory or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via Order.AddItem or RestoreItem")

// Item is a line on an order: a quantity of one product at the price the
// product carried when the line was added. Items are exclusively owned by
// their Order and are only created, merged, and removed through it.
//
// The unit price is captured at add time and never follows later catalog
// price changes, so historical orders stay accurate.
type Item struct {
	// id is the unique identifier for the line
	id kernel.UUID

	// orderID references the owning order
	orderID kernel.UUID

	// productID is a weak reference to the reserved product
	productID kernel.UUID

	// quantity is the number of reserved units (always positive)
	quantity int

	// unitPrice is the product price captured when the line was added
	unitPrice decimal.Decimal

	// guard ensures the item was created via a constructor
	guard guard.ConstructorGuard
}

// newItem creates a validated line. Only Order.AddItem calls it; the order
// enforces its own lifecycle rules before a line may exist.
func newItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	unitPrice decimal.Decimal,
) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a line from persistent storage.
func RestoreItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	unitPrice decimal.Decimal,
) (*Item, error) {
	return newItem(id, orderID, productID, quantity, unitPrice)
}

// Validate ensures the Item was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning order.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the identifier of the reserved product.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of reserved units.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price captured when the line was added.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns quantity * unitPrice.
func (i *Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// increaseQuantity merges additional units into the line. The captured unit
// price is deliberately left untouched.
func (i *Item) increaseQuantity(by int) error {
	if by <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", by),
		)
	}
	i.quantity += by
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.Sign() <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			errors.New(unitPrice.String()+" is not greater than 0"),
		)
	}
	i.unitPrice = unitPrice
	return nil
}

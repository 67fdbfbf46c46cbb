package order

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for order operations.
var (
	// ErrCustomerNameIsRequired is returned when opening an order without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrPlacedAtIsRequired is returned when opening an order without a placement time.
	ErrPlacedAtIsRequired = errs.NewValueIsRequiredError("placedAt")
	// ErrOrderHasNoItems is returned when fulfilling an order with no lines.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order in the warehouse. It is the aggregate
// root that owns the order's lines and drives the lifecycle from pending
// through fulfillment or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, a customer name, and a placement time
//   - Lines can only be added or removed while the order is pending
//   - Each product appears on at most one line; repeats merge by quantity
//   - Status transitions follow the Pending -> Fulfilled | Cancelled machine
//   - An order with zero lines must not outlive the authoring step; the
//     use case layer discards such orders
//
// Stock effects are not applied here: callers pair every AddItem/RemoveItem
// with the matching Product.Reserve/Return inside one storage transaction.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerName identifies who placed the order
	customerName string

	// placedAt is the creation timestamp
	placedAt time.Time

	// status is the current state in the order lifecycle
	status Status

	// items are the owned lines, in insertion order
	items []*Item

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder opens a new pending order with no lines.
func NewOrder(id kernel.UUID, customerName string, placedAt time.Time) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its lines and persisted status.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	placedAt time.Time,
	status Status,
	items []*Item,
) (*Order, error) {
	o, err := NewOrder(id, customerName, placedAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}
	o.items = items

	return o, nil
}

// Validate ensures the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns who placed the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// PlacedAt returns the creation timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's lines in insertion order.
// The returned slice is a copy; the lines themselves are shared.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// HasItems reports whether the order carries at least one line.
func (o *Order) HasItems() bool {
	return len(o.items) > 0
}

// ItemByID returns the line with the given identifier, or nil.
func (o *Order) ItemByID(itemID kernel.UUID) *Item {
	for _, item := range o.items {
		if item.id.IsEqual(itemID) {
			return item
		}
	}
	return nil
}

// ItemByProduct returns the line referencing the given product, or nil.
func (o *Order) ItemByProduct(productID kernel.UUID) *Item {
	for _, item := range o.items {
		if item.productID.IsEqual(productID) {
			return item
		}
	}
	return nil
}

// TotalAmount returns the sum of quantity * unitPrice over all lines.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// AddItem records quantity units of a product on the order.
//
// The order must be pending. If a line for the product already exists the
// quantities merge onto that line and its originally captured unit price is
// kept; otherwise a new line is appended capturing unitPrice. The affected
// line is returned either way.
//
// The caller is responsible for reserving the same quantity on the Product
// in the same transaction.
func (o *Order) AddItem(
	itemID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	unitPrice decimal.Decimal,
) (*Item, error) {
	if o.status != Pending {
		return nil, errs.NewInvalidStateError("add item", o.status.String())
	}

	if existing := o.ItemByProduct(productID); existing != nil {
		if err := existing.increaseQuantity(quantity); err != nil {
			return nil, err
		}
		return existing, nil
	}

	item, err := newItem(itemID, o.id, productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.items = append(o.items, item)
	return item, nil
}

// RemoveItem deletes the line with the given identifier and returns it so
// the caller can credit the reserved quantity back to the product.
//
// The order must be pending.
func (o *Order) RemoveItem(itemID kernel.UUID) (*Item, error) {
	if o.status != Pending {
		return nil, errs.NewInvalidStateError("remove item", o.status.String())
	}

	for idx, item := range o.items {
		if item.id.IsEqual(itemID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			return item, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("item", itemID.String())
}

// Fulfill marks the order as fulfilled.
//
// The order must be pending and must carry at least one line. Fulfillment is
// irreversible; shipment creation and reservation checks are coordinated by
// the use case layer in the same transaction.
func (o *Order) Fulfill() error {
	if o.status != Pending {
		return errs.NewInvalidStateError("fulfill", o.status.String())
	}
	if !o.HasItems() {
		return ErrOrderHasNoItems
	}

	o.status = Fulfilled
	return nil
}

// Cancel marks the order as cancelled. The order must be pending.
// Lines are retained for audit; the caller returns their reserved
// quantities to the catalog in the same transaction.
func (o *Order) Cancel() error {
	if o.status != Pending {
		return errs.NewInvalidStateError("cancel", o.status.String())
	}

	o.status = Cancelled
	return nil
}

// ChangeStatus applies a direct status update validated against the state
// machine. Disallowed jumps fail with an InvalidTransitionError.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return ErrPlacedAtIsRequired
	}
	o.placedAt = placedAt
	return nil
}

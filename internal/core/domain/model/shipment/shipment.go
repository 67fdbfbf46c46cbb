package shipment

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when using an improperly
// initialized Shipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment tracks the delivery of a fulfilled order. Each order carries at
// most one shipment; the one-to-one invariant is enforced by the fulfillment
// use case, which is the only place shipments are created.
//
// The shipped date is stamped the first time the status reaches Delivered
// and survives later status changes unless explicitly cleared.
type Shipment struct {
	// id is the unique identifier for the shipment
	id kernel.UUID

	// orderID references the fulfilled order (one-to-one)
	orderID kernel.UUID

	// deliveryStatus is the current delivery progress
	deliveryStatus DeliveryStatus

	// shippedDate is when the shipment was first delivered, nil until then
	shippedDate *time.Time

	// guard ensures the shipment was created via a constructor
	guard guard.ConstructorGuard
}

// NewShipment creates a shipment for an order with status NotShipped.
func NewShipment(id kernel.UUID, orderID kernel.UUID) (*Shipment, error) {
	s := &Shipment{
		deliveryStatus: NotShipped,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistent storage.
func RestoreShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	deliveryStatus DeliveryStatus,
	shippedDate *time.Time,
) (*Shipment, error) {
	s, err := NewShipment(id, orderID)
	if err != nil {
		return nil, err
	}

	if err = deliveryStatus.Validate(); err != nil {
		return nil, err
	}
	s.deliveryStatus = deliveryStatus
	s.shippedDate = shippedDate

	return s, nil
}

// Validate ensures the Shipment was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by identity.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderID returns the identifier of the shipped order.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// DeliveryStatus returns the current delivery progress.
func (s *Shipment) DeliveryStatus() DeliveryStatus {
	return s.deliveryStatus
}

// ShippedDate returns when the shipment was first delivered, or nil.
func (s *Shipment) ShippedDate() *time.Time {
	return s.shippedDate
}

// ChangeStatus updates the delivery status. The first move into Delivered
// stamps the shipped date with now; moving away from Delivered leaves the
// date untouched (see ClearShippedDate).
func (s *Shipment) ChangeStatus(newStatus DeliveryStatus, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	s.deliveryStatus = newStatus
	if newStatus == Delivered && s.shippedDate == nil {
		s.shippedDate = &now
	}
	return nil
}

// ClearShippedDate erases the recorded delivery time. Callers use it after a
// confirmed correction, when the status was moved away from Delivered and the
// stamp should not survive.
func (s *Shipment) ClearShippedDate() {
	s.shippedDate = nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

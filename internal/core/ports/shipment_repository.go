package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByOrderID retrieves the shipment for an order, if one exists.
	// Returns an ObjectNotFoundError when the order has no shipment.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*shipment.Shipment, error)

	// Delete removes a shipment. Shipments carry no downstream stock
	// effects, so deletion is unconditional.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteByOrderID removes the shipment attached to an order, if any.
	// Used by the order deletion flow; missing shipments are not an error.
	DeleteByOrderID(ctx context.Context, orderID kernel.UUID) error
}

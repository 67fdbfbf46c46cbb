// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// The order reference carries a unique index enforcing the one-shipment-per-order
// invariant at the storage level.
type ShipmentDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	DeliveryStatus int        `gorm:"type:int;not null"`
	ShippedDate    *time.Time
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(shipment *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:             shipment.ID().Bytes(),
		OrderID:        shipment.OrderID().Bytes(),
		DeliveryStatus: int(shipment.DeliveryStatus()),
		ShippedDate:    shipment.ShippedDate(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, orderID, shipment.DeliveryStatus(dto.DeliveryStatus), dto.ShippedDate)
}

package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetAllShipmentsQueryIsNotConstructed = errors.New(
	"GetAllShipmentsQuery must be created via NewGetAllShipmentsQuery constructor",
)

// GetAllShipmentsQuery retrieves every shipment in the tracker.
type GetAllShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllShipmentsQuery creates a query to retrieve all shipments.
// This is a parameterless query that fetches the complete shipment list.
func NewGetAllShipmentsQuery() GetAllShipmentsQuery {
	return GetAllShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllShipmentsQueryIsNotConstructed if validation fails.
func (q GetAllShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipmentsQueryIsNotConstructed)
}

// GetAllShipmentsQueryResponse represents one shipment in the read model.
// ShippedDate is nil until the shipment first reaches delivered.
type GetAllShipmentsQueryResponse struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	DeliveryStatus string
	ShippedDate    *time.Time
}

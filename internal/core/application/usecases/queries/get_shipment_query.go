package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves a single shipment by its identifier.
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query to retrieve one shipment by ID.
func NewGetShipmentQuery(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	query := GetShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setShipmentID(shipmentID); err != nil {
		return GetShipmentQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentQueryIsNotConstructed if validation fails.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to fetch.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

func (q *GetShipmentQuery) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	q.shipmentID = shipmentID
	return nil
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves a single shipment from the database.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query to retrieve one shipment by ID.
// Returns an ObjectNotFoundError if no shipment with the ID exists.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetAllShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllShipmentsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			delivery_status,
			shipped_date
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Row()

	var shipmentResp GetAllShipmentsQueryResponse
	var id, orderID uuid.UUID
	var deliveryStatus int

	err := row.Scan(
		&id,
		&orderID,
		&deliveryStatus,
		&shipmentResp.ShippedDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetAllShipmentsQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"shipmentID", query.ShipmentID(), err)
	}
	if err != nil {
		return GetAllShipmentsQueryResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetAllShipmentsQueryResponse{}, err
	}
	shipmentResp.ID = shipmentID

	shipmentOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetAllShipmentsQueryResponse{}, err
	}
	shipmentResp.OrderID = shipmentOrderID
	shipmentResp.DeliveryStatus = shipment.DeliveryStatus(deliveryStatus).String()

	return shipmentResp, nil
}

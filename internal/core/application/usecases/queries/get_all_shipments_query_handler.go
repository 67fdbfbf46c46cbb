package queries

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllShipmentsQueryHandler retrieves shipment records from the database.
type GetAllShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllShipmentsQueryHandler creates a handler for shipment list queries.
// Requires a GORM database connection for query execution.
func NewGetAllShipmentsQueryHandler(db *gorm.DB) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all shipments.
// Returns shipments sorted by ID for consistent output.
func (h GetAllShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipmentsQuery,
) ([]GetAllShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetAllShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			delivery_status,
			shipped_date
		FROM shipments
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var shipmentResp GetAllShipmentsQueryResponse
		var id, orderID uuid.UUID
		var deliveryStatus int

		err = rows.Scan(
			&id,
			&orderID,
			&deliveryStatus,
			&shipmentResp.ShippedDate,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		shipmentResp.ID = shipmentID

		shipmentOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		shipmentResp.OrderID = shipmentOrderID
		shipmentResp.DeliveryStatus = shipment.DeliveryStatus(deliveryStatus).String()
		shipments = append(shipments, shipmentResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

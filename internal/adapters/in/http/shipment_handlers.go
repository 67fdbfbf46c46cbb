package http

import (
	"net/http"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// ShipmentStatusUpdate is the request body for delivery progress reports.
// ClearShippedDate must be set explicitly to erase a stale stamp; a status
// change alone never clears it.
type ShipmentStatusUpdate struct {
	Status           string `json:"status"`
	ClearShippedDate bool   `json:"clearShippedDate,omitempty"`
}

// Shipment is the JSON representation of one shipment.
type Shipment struct {
	ID             string     `json:"id"`
	OrderID        string     `json:"orderId"`
	DeliveryStatus string     `json:"deliveryStatus"`
	ShippedDate    *time.Time `json:"shippedDate,omitempty"`
}

// GetShipments handles GET /api/v1/shipments - retrieves all shipments.
func (s *Server) GetShipments(ctx echo.Context) error {
	query := queries.NewGetAllShipmentsQuery()

	shipments, err := s.handlers.GetAllShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Shipment, len(shipments))
	for i, sh := range shipments {
		response[i] = Shipment{
			ID:             sh.ID.String(),
			OrderID:        sh.OrderID.String(),
			DeliveryStatus: sh.DeliveryStatus,
			ShippedDate:    sh.ShippedDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipment handles GET /api/v1/shipments/:id - retrieves one shipment.
func (s *Server) GetShipment(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id: "+err.Error())
	}

	result, err := s.handlers.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Shipment{
		ID:             result.ID.String(),
		OrderID:        result.OrderID.String(),
		DeliveryStatus: result.DeliveryStatus,
		ShippedDate:    result.ShippedDate,
	})
}

// UpdateShipmentStatus handles PATCH /api/v1/shipments/:id/status - records
// a carrier progress report.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var update ShipmentStatusUpdate
	if err = ctx.Bind(&update); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := shipment.DeliveryStatusFromString(update.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(id, status, update.ClearShippedDate)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if handleErr := s.handlers.UpdateShipmentStatus.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipment handles DELETE /api/v1/shipments/:id - removes a shipment record.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	cmd, err := commands.NewDeleteShipmentCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id: "+err.Error())
	}

	if handleErr := s.handlers.DeleteShipment.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

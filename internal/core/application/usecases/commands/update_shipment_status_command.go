package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand represents a delivery progress report on a
// shipment. The first move into delivered stamps the shipped date; clearing
// a stale stamp is an explicit, user-confirmed request carried on the
// command, never an implicit side effect.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID       kernel.UUID
	newStatus        shipment.DeliveryStatus
	clearShippedDate bool

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to update delivery progress.
// Validates that the shipment ID is valid and the status is a defined one.
func NewUpdateShipmentStatusCommand(
	shipmentID kernel.UUID,
	newStatus shipment.DeliveryStatus,
	clearShippedDate bool,
) (UpdateShipmentStatusCommand, error) {
	command := UpdateShipmentStatusCommand{
		clearShippedDate: clearShippedDate,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setNewStatus(newStatus),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShipmentStatusCommandIsNotConstructed if validation fails.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to update.
func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// NewStatus returns the reported delivery status.
func (c UpdateShipmentStatusCommand) NewStatus() shipment.DeliveryStatus {
	return c.newStatus
}

// ClearShippedDate reports whether the caller confirmed erasing the stamp.
func (c UpdateShipmentStatusCommand) ClearShippedDate() bool {
	return c.clearShippedDate
}

func (c *UpdateShipmentStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentStatusCommand) setNewStatus(newStatus shipment.DeliveryStatus) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

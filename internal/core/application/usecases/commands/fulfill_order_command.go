package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrFulfillOrderCommandIsNotConstructed = errors.New(
	"FulfillOrderCommand must be created via NewFulfillOrderCommand constructor",
)

// FulfillOrderCommand represents a request to commit a pending order:
// flip it to fulfilled and produce its shipment.
//
// Example:
//
//	cmd, err := NewFulfillOrderCommand(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewFulfillOrderCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidState) {
//	    // order was already fulfilled or cancelled
//	}
type FulfillOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFulfillOrderCommand creates a command to fulfill a pending order.
func NewFulfillOrderCommand(orderID kernel.UUID) (FulfillOrderCommand, error) {
	command := FulfillOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return FulfillOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFulfillOrderCommandIsNotConstructed if validation fails.
func (c FulfillOrderCommand) Validate() error {
	return c.guard.Validate(ErrFulfillOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to fulfill.
func (c FulfillOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *FulfillOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

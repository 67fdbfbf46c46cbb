package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrDiscardEmptyOrderCommandIsNotConstructed = errors.New(
	"DiscardEmptyOrderCommand must be created via NewDiscardEmptyOrderCommand constructor",
)

// DiscardEmptyOrderCommand deletes an order if it still has zero lines.
// Used to clean up after authoring flows that opened an order and then
// never put anything on it. Orders with lines are left untouched.
type DiscardEmptyOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDiscardEmptyOrderCommand creates a command to discard an order when empty.
func NewDiscardEmptyOrderCommand(orderID kernel.UUID) (DiscardEmptyOrderCommand, error) {
	command := DiscardEmptyOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return DiscardEmptyOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDiscardEmptyOrderCommandIsNotConstructed if validation fails.
func (c DiscardEmptyOrderCommand) Validate() error {
	return c.guard.Validate(ErrDiscardEmptyOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to discard.
func (c DiscardEmptyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DiscardEmptyOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

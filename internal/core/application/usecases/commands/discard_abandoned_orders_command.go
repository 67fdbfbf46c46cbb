package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrDiscardAbandonedOrdersCommandIsNotConstructed = errors.New(
	"DiscardAbandonedOrdersCommand must be created via NewDiscardAbandonedOrdersCommand constructor",
)

// DiscardAbandonedOrdersCommand sweeps the ledger for pending orders with no
// lines and deletes them. This batch variant of the empty-order cleanup runs
// on a schedule.
//
// Example:
//
//	cmd := NewDiscardAbandonedOrdersCommand()
//	handler := NewDiscardAbandonedOrdersCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Cleanup sweep failed: %v", err)
//	}
type DiscardAbandonedOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewDiscardAbandonedOrdersCommand creates a command to sweep empty pending orders.
// This is a parameterless command that processes the whole ledger.
func NewDiscardAbandonedOrdersCommand() DiscardAbandonedOrdersCommand {
	command := DiscardAbandonedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrDiscardAbandonedOrdersCommandIsNotConstructed if validation fails.
func (c *DiscardAbandonedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDiscardAbandonedOrdersCommandIsNotConstructed)
}

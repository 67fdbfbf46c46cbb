package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
	ErrDeltaIsRequired = errors.New("delta must not be 0")
)

// AdjustStockCommand represents a manual stock correction on a catalog entry.
// The delta may be positive (restock) or negative (shrinkage, damage).
//
// Example:
//
//	cmd, err := NewAdjustStockCommand(productID, -3)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAdjustStockCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("stock adjustment failed: %w", err)
//	}
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	delta     int

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command to adjust a product's stock level.
// Validates that the product ID is valid and the delta is non-zero.
func NewAdjustStockCommand(productID kernel.UUID, delta int) (AdjustStockCommand, error) {
	command := AdjustStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setDelta(delta),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdjustStockCommandIsNotConstructed if validation fails.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to adjust.
func (c AdjustStockCommand) ProductID() kernel.UUID {
	return c.productID
}

// Delta returns the signed stock change to apply.
func (c AdjustStockCommand) Delta() int {
	return c.delta
}

func (c *AdjustStockCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AdjustStockCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsRequired
	}

	c.delta = delta
	return nil
}

package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrNoFieldsToUpdate = errors.New("at least one field must be updated")
)

// UpdateProductCommand represents a partial update of a catalog entry.
// Nil fields are left untouched; at least one field must be present.
//
// Example:
//
//	newName := "Widget Deluxe"
//	cmd, err := NewUpdateProductCommand(productID, &newName, nil, nil)
//	if err != nil {
//	    return err
//	}
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID     kernel.UUID
	name          *string
	pricePerUnit  *decimal.Decimal
	stockQuantity *int

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to partially update a product.
// Validates that the product ID is valid, at least one field is present,
// a present name is not empty, a present price is positive, and a present
// stock level is not negative.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name *string,
	pricePerUnit *decimal.Decimal,
	stockQuantity *int,
) (UpdateProductCommand, error) {
	command := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setName(name),
		command.setPricePerUnit(pricePerUnit),
		command.setStockQuantity(stockQuantity),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	if name == nil && pricePerUnit == nil && stockQuantity == nil {
		return UpdateProductCommand{}, ErrNoFieldsToUpdate
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateProductCommandIsNotConstructed if validation fails.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new display name, or nil to keep the current one.
func (c UpdateProductCommand) Name() *string {
	return c.name
}

// PricePerUnit returns the new price, or nil to keep the current one.
func (c UpdateProductCommand) PricePerUnit() *decimal.Decimal {
	return c.pricePerUnit
}

// StockQuantity returns the new absolute stock level, or nil to keep the current one.
func (c UpdateProductCommand) StockQuantity() *int {
	return c.stockQuantity
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name *string) error {
	if name != nil && *name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPricePerUnit(pricePerUnit *decimal.Decimal) error {
	if pricePerUnit != nil && pricePerUnit.Sign() <= 0 {
		return ErrPriceIsInvalid
	}

	c.pricePerUnit = pricePerUnit
	return nil
}

func (c *UpdateProductCommand) setStockQuantity(stockQuantity *int) error {
	if stockQuantity != nil && *stockQuantity < 0 {
		return ErrStockIsInvalid
	}

	c.stockQuantity = stockQuantity
	return nil
}

package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddProductCommandIsNotConstructed = errors.New(
		"AddProductCommand must be created via NewAddProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("name is required")
	ErrProductSKUIsRequired  = errors.New("sku is required")
	ErrPriceIsInvalid        = errors.New("price must be greater than 0")
	ErrStockIsInvalid        = errors.New("stock quantity must not be negative")
)

// AddProductCommand represents a request to register a new product in the catalog.
//
// Example:
//
//	productID := kernel.NewUUID()
//	cmd, err := NewAddProductCommand(productID, "Widget", "WDG-001", decimal.NewFromFloat(9.99), 100)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewAddProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add product: %w", err)
//	}
type AddProductCommand struct { //nolint:recvcheck //using for validation
	productID     kernel.UUID
	name          string
	sku           string
	pricePerUnit  decimal.Decimal
	stockQuantity int

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to register a new catalog entry.
// Validates that the product ID is valid, name and SKU are not empty,
// price is positive, and the initial stock is not negative.
func NewAddProductCommand(
	productID kernel.UUID,
	name string,
	sku string,
	pricePerUnit decimal.Decimal,
	stockQuantity int,
) (AddProductCommand, error) {
	command := AddProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setName(name),
		command.setSKU(sku),
		command.setPricePerUnit(pricePerUnit),
		command.setStockQuantity(stockQuantity),
	); err != nil {
		return AddProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddProductCommandIsNotConstructed if validation fails.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the new product.
func (c AddProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the display name of the product.
func (c AddProductCommand) Name() string {
	return c.name
}

// SKU returns the stock keeping unit of the product.
func (c AddProductCommand) SKU() string {
	return c.sku
}

// PricePerUnit returns the catalog price of the product.
func (c AddProductCommand) PricePerUnit() decimal.Decimal {
	return c.pricePerUnit
}

// StockQuantity returns the initial stock level.
func (c AddProductCommand) StockQuantity() int {
	return c.stockQuantity
}

func (c *AddProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddProductCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrProductSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *AddProductCommand) setPricePerUnit(pricePerUnit decimal.Decimal) error {
	if pricePerUnit.Sign() <= 0 {
		return ErrPriceIsInvalid
	}

	c.pricePerUnit = pricePerUnit
	return nil
}

func (c *AddProductCommand) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return ErrStockIsInvalid
	}

	c.stockQuantity = stockQuantity
	return nil
}

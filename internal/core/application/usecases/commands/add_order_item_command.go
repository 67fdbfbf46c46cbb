package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrAddOrderItemCommandIsNotConstructed = errors.New(
		"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddOrderItemCommand represents a request to put a quantity of a product on
// a pending order. The reservation debits catalog stock in the same
// transaction that records the line.
//
// Example:
//
//	cmd, err := NewAddOrderItemCommand(orderID, productID, 3)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAddOrderItemCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInsufficientStock) {
//	    // not enough stock to reserve
//	}
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to reserve product units on an order.
// Validates that both identifiers are valid and the quantity is positive.
func NewAddOrderItemCommand(
	orderID kernel.UUID,
	productID kernel.UUID,
	quantity int,
) (AddOrderItemCommand, error) {
	command := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setProductID(productID),
		command.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddOrderItemCommandIsNotConstructed if validation fails.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to extend.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the identifier of the product to reserve.
func (c AddOrderItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units to reserve.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrOpenOrderCommandIsNotConstructed = errors.New(
		"OpenOrderCommand must be created via NewOpenOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// OpenOrderCommand represents a request to open a new order for a customer.
// The order starts pending with no lines.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewOpenOrderCommand(orderID, "Acme Corp")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewOpenOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to open order: %w", err)
//	}
type OpenOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerName string

	guard guard.ConstructorGuard
}

// NewOpenOrderCommand creates a command to open a new order.
// Validates that the order ID is valid and the customer name is not empty.
func NewOpenOrderCommand(orderID kernel.UUID, customerName string) (OpenOrderCommand, error) {
	command := OpenOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerName(customerName),
	); err != nil {
		return OpenOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrOpenOrderCommandIsNotConstructed if validation fails.
func (c OpenOrderCommand) Validate() error {
	return c.guard.Validate(ErrOpenOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c OpenOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns who the order is for.
func (c OpenOrderCommand) CustomerName() string {
	return c.customerName
}

func (c *OpenOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *OpenOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

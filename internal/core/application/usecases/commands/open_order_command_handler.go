package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/order"
)

// OpenOrderCommandHandler handles the business logic for opening orders.
// Creates new orders in pending status with the current time as placement time.
//
// Example:
//
//	handler := NewOpenOrderCommandHandler(uowFactory)
//	cmd, _ := NewOpenOrderCommand(kernel.NewUUID(), "Acme Corp")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type OpenOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewOpenOrderCommandHandler creates a handler for order opening operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewOpenOrderCommandHandler(uowFactory OrderUoWFactory) OpenOrderCommandHandler {
	return OpenOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order opening command.
func (h *OpenOrderCommandHandler) Handle(ctx context.Context, cmd OpenOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerName(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

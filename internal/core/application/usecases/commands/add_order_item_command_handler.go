package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
)

// AddOrderItemCommandHandler coordinates the stock reservation that backs a
// new order line. The product row is locked for the transaction, the stock
// debit and the line creation commit together or not at all.
//
// Example:
//
//	handler := NewAddOrderItemCommandHandler(uowFactory)
//	cmd, _ := NewAddOrderItemCommand(orderID, productID, 3)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInsufficientStock):
//	    log.Println("Not enough stock")
//	case errors.Is(err, errs.ErrInvalidState):
//	    log.Println("Order is no longer pending")
//	case err != nil:
//	    log.Printf("Reservation failed: %v", err)
//	}
type AddOrderItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for order line reservations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAddOrderItemCommandHandler(uowFactory UoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reservation command.
// Repeated adds for the same product merge onto the existing line; the line
// keeps the unit price captured when it was first created.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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
	productRepo := uow.ProductRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	reserved, err := productRepo.GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = reserved.Reserve(cmd.Quantity()); err != nil {
		return err
	}

	if _, err = aggregate.AddItem(kernel.NewUUID(), reserved.ID(), cmd.Quantity(), reserved.PricePerUnit()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, reserved); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

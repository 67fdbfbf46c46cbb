package commands

import (
	"context"
)

// FulfillOrderCommandHandler orchestrates order fulfillment across all three
// aggregates. The status flip and the shipment creation land in one
// transaction; any failure leaves the prior state untouched.
//
// Stock is NOT debited here: reservations made at add-item time are the
// single source of truth for committed stock.
type FulfillOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewFulfillOrderCommandHandler creates a handler for fulfillment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewFulfillOrderCommandHandler(uowFactory UoWFactory) FulfillOrderCommandHandler {
	return FulfillOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fulfillment command.
// Fails with InvalidState unless the order is pending, and with
// ObjectNotFound if a reserved product has vanished from the catalog.
func (h *FulfillOrderCommandHandler) Handle(ctx context.Context, cmd FulfillOrderCommand) error {
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

	if err := fulfillPendingOrder(ctx, uow, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

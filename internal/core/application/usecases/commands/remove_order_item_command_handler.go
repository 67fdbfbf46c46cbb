package commands

import (
	"context"
)

// RemoveOrderItemCommandHandler undoes a reservation: the line comes off the
// order and its quantity returns to the product's stock, atomically.
type RemoveOrderItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveOrderItemCommandHandler creates a handler for order line removals.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewRemoveOrderItemCommandHandler(uowFactory UoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line removal command.
// The order must be pending; the removed line's quantity is credited back to
// the catalog in the same transaction.
func (h *RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
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

	removed, err := aggregate.RemoveItem(cmd.ItemID())
	if err != nil {
		return err
	}

	credited, err := productRepo.GetForUpdate(ctx, removed.ProductID())
	if err != nil {
		return err
	}

	if err = credited.Return(removed.Quantity()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, credited); err != nil {
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

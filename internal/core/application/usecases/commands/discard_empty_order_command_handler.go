package commands

import (
	"context"
)

// DiscardEmptyOrderCommandHandler deletes orders abandoned during authoring.
// An order that picked up lines in the meantime is deliberately left alone;
// discarding is a no-op then, not an error.
type DiscardEmptyOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDiscardEmptyOrderCommandHandler creates a handler for empty-order cleanup.
// Requires an OrderUoWFactory for transactional persistence.
func NewDiscardEmptyOrderCommandHandler(uowFactory OrderUoWFactory) DiscardEmptyOrderCommandHandler {
	return DiscardEmptyOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the discard command.
// Empty orders carry no reservations and no shipment, so deletion has no
// side effects beyond the order row itself.
func (h *DiscardEmptyOrderCommandHandler) Handle(ctx context.Context, cmd DiscardEmptyOrderCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.HasItems() {
		return nil
	}

	if err = orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

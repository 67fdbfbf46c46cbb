package commands

import (
	"context"
)

// DiscardAbandonedOrdersCommandHandler deletes every pending order that has
// no lines. Empty orders carry no reservations and no shipment, so the sweep
// touches nothing but order rows.
type DiscardAbandonedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDiscardAbandonedOrdersCommandHandler creates a handler for the cleanup sweep.
// Requires an OrderUoWFactory for transactional persistence.
func NewDiscardAbandonedOrdersCommandHandler(uowFactory OrderUoWFactory) DiscardAbandonedOrdersCommandHandler {
	return DiscardAbandonedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command.
func (h *DiscardAbandonedOrdersCommandHandler) Handle(ctx context.Context, cmd DiscardAbandonedOrdersCommand) error {
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
	abandoned, err := orderRepo.GetAllPendingWithoutItems(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range abandoned {
		if err = orderRepo.Delete(ctx, aggregate.ID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// DeleteOrderCommandHandler erases an order and everything hanging off it.
// Deletion is explicit and child-first: stock credits, then the shipment,
// then the lines and the order row. The whole sequence is one transaction;
// a failure at any step leaves the prior state unchanged. No reliance on
// storage-level cascades.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
// Only pending lines still hold reservations, so only they are credited
// back. Cancelled orders returned their stock at cancellation; fulfilled
// orders shipped their goods and must not re-inflate the catalog.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if aggregate.Status() == order.Pending {
		productRepo := uow.ProductRepository()
		for _, item := range aggregate.Items() {
			credited, itemErr := productRepo.GetForUpdate(ctx, item.ProductID())
			if itemErr != nil {
				return itemErr
			}

			if itemErr = credited.Return(item.Quantity()); itemErr != nil {
				return itemErr
			}

			if itemErr = productRepo.Update(ctx, credited); itemErr != nil {
				return itemErr
			}
		}
	}

	if err = uow.ShipmentRepository().DeleteByOrderID(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

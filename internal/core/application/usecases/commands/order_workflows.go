package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
)

// fulfillPendingOrder commits a pending order inside the caller's transaction.
//
// Stock was already debited line by line when the reservations were made, so
// fulfillment does not touch stock levels again. It re-verifies that every
// reserved product still exists in the catalog, flips the order to fulfilled,
// and creates the order's shipment in not-shipped status.
func fulfillPendingOrder(ctx context.Context, uow UoW, orderID kernel.UUID) error {
	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	for _, item := range aggregate.Items() {
		if _, err = productRepo.Get(ctx, item.ProductID()); err != nil {
			return err
		}
	}

	if err = aggregate.Fulfill(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	newShipment, err := shipment.NewShipment(kernel.NewUUID(), aggregate.ID())
	if err != nil {
		return err
	}

	return uow.ShipmentRepository().Add(ctx, newShipment)
}

// cancelPendingOrder abandons a pending order inside the caller's transaction.
// Every line's reserved quantity returns to the catalog; the lines themselves
// stay on the order for audit.
func cancelPendingOrder(ctx context.Context, uow UoW, orderID kernel.UUID) error {
	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

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

	return orderRepo.Update(ctx, aggregate)
}

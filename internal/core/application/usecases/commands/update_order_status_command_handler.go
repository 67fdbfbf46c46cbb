package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies a direct status transition with its
// full side effects. The order state machine only admits two edges, both out
// of pending, so a legal transition is always either a fulfillment (shipment
// created, reservations verified) or a cancellation (stock returned), never a
// bare column update that would leave stock and shipments inconsistent.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for direct status transitions.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Disallowed jumps fail with an InvalidTransitionError before any effect.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Reject bad edges up front so the caller sees InvalidTransition,
	// not the workflow's InvalidState.
	if _, err = aggregate.Status().TransitionTo(cmd.NewStatus()); err != nil {
		return err
	}

	switch cmd.NewStatus() {
	case order.Fulfilled:
		err = fulfillPendingOrder(ctx, uow, cmd.OrderID())
	case order.Cancelled:
		err = cancelPendingOrder(ctx, uow, cmd.OrderID())
	default:
		err = errs.NewInvalidTransitionError(aggregate.Status().String(), cmd.NewStatus().String())
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

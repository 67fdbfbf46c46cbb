package commands

import (
	"context"

	"warehouse/internal/pkg/errs"
)

// RemoveProductCommandHandler handles catalog deletions.
// A product referenced by any order line cannot be removed; the lines keep
// their captured price, but the weak reference must stay resolvable.
type RemoveProductCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveProductCommandHandler creates a handler for catalog deletion operations.
// Requires a UoWFactory since the reference check spans the order ledger.
func NewRemoveProductCommandHandler(uowFactory UoWFactory) RemoveProductCommandHandler {
	return RemoveProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product deletion command.
// Fails with a ReferencedEntityError while order lines reference the product.
func (h *RemoveProductCommandHandler) Handle(ctx context.Context, cmd RemoveProductCommand) error {
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

	count, err := uow.OrderRepository().CountItemsForProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewReferencedEntityError("product", cmd.ProductID().String(), "order items")
	}

	if err = uow.ProductRepository().Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

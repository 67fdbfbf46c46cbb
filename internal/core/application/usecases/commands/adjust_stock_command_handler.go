package commands

import (
	"context"
)

// AdjustStockCommandHandler handles manual stock corrections.
// Locks the product row so concurrent adjustments on the same product
// serialize instead of racing the underflow check.
type AdjustStockCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewAdjustStockCommandHandler creates a handler for stock adjustment operations.
// Requires a ProductUoWFactory for transactional persistence.
func NewAdjustStockCommandHandler(uowFactory ProductUoWFactory) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock adjustment command.
// A delta that would push stock below zero fails with a StockUnderflowError
// and leaves the stored level unchanged.
func (h *AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) error {
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

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = aggregate.AdjustStock(cmd.Delta()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

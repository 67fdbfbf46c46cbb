package commands

import (
	"context"
)

// UpdateProductCommandHandler handles partial catalog updates.
// Applies only the fields present on the command.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for catalog update operations.
// Requires a ProductUoWFactory for transactional persistence.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product update command.
// The stock field sets an absolute level; relative corrections go through
// AdjustStockCommand instead.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	if name := cmd.Name(); name != nil {
		if err = aggregate.Rename(*name); err != nil {
			return err
		}
	}

	if price := cmd.PricePerUnit(); price != nil {
		if err = aggregate.ChangePrice(*price); err != nil {
			return err
		}
	}

	if stock := cmd.StockQuantity(); stock != nil {
		if err = aggregate.SetStock(*stock); err != nil {
			return err
		}
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

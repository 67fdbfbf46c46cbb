package commands

import (
	"context"

	"warehouse/internal/core/domain/model/product"
)

// AddProductCommandHandler handles the business logic for catalog registration.
// Creates new products with their initial stock level.
//
// Example:
//
//	handler := NewAddProductCommandHandler(uowFactory)
//	cmd, _ := NewAddProductCommand(kernel.NewUUID(), "Widget", "WDG-001", price, 100)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("product registration failed: %w", err)
//	}
type AddProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewAddProductCommandHandler creates a handler for catalog registration operations.
// Requires a ProductUoWFactory for transactional persistence.
func NewAddProductCommandHandler(uowFactory ProductUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product registration command.
// A SKU already present in the catalog surfaces as a DuplicateSKUError from
// the repository's unique constraint.
func (h *AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) error {
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
	newProduct, err := product.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.SKU(),
		cmd.PricePerUnit(),
		cmd.StockQuantity(),
	)
	if err != nil {
		return err
	}

	if err = productRepo.Add(ctx, newProduct); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

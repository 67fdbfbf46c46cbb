package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// Provides methods for storing, retrieving, and removing catalog entries.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// Fails with a DuplicateSKUError when the SKU is already taken.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	// The product must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product and locks its row for the duration of
	// the current transaction. Used by flows that adjust stock so concurrent
	// reservations serialize instead of double-spending.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetBySKU retrieves a product aggregate by its stock keeping unit.
	GetBySKU(ctx context.Context, sku string) (*product.Product, error)

	// Delete removes a product from the catalog.
	// Callers must first verify no order line references the product.
	Delete(ctx context.Context, id kernel.UUID) error
}

package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders load and store together with their lines; callers never touch
// line rows directly.
type OrderRepository interface {
	// Add persists a new order aggregate and its lines to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Lines removed from the aggregate are removed from storage too.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including all of its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and its lines. Any attached shipment must be
	// removed first; stock restitution is the caller's responsibility.
	Delete(ctx context.Context, id kernel.UUID) error

	// CountItemsForProduct reports how many order lines reference a product.
	// Used to block catalog deletions that would orphan lines.
	CountItemsForProduct(ctx context.Context, productID kernel.UUID) (int64, error)

	// GetAllPendingWithoutItems retrieves pending orders that carry no lines.
	// Used by the maintenance sweep that discards abandoned empty orders.
	GetAllPendingWithoutItems(ctx context.Context) ([]*order.Order, error)
}

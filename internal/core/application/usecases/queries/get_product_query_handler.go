package queries

import (
	"context"
	"database/sql"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductQueryHandler retrieves a single product from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single-product queries.
// Requires a GORM database connection for query execution.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query to retrieve one product by ID.
// Returns an ObjectNotFoundError if no product with the ID exists.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			sku,
			stock_quantity,
			price_per_unit
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Row()

	var product GetProductQueryResponse
	var id uuid.UUID

	err := row.Scan(
		&id,
		&product.Name,
		&product.SKU,
		&product.StockQuantity,
		&product.PricePerUnit,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetProductQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"productID", query.ProductID(), err)
	}
	if err != nil {
		return GetProductQueryResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetProductQueryResponse{}, err
	}
	product.ID = productID

	return product, nil
}

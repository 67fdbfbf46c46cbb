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

// GetProductBySKUQueryHandler retrieves a single product by SKU from the database.
type GetProductBySKUQueryHandler struct {
	db *gorm.DB
}

// NewGetProductBySKUQueryHandler creates a handler for SKU lookup queries.
// Requires a GORM database connection for query execution.
func NewGetProductBySKUQueryHandler(db *gorm.DB) GetProductBySKUQueryHandler {
	return GetProductBySKUQueryHandler{db: db}
}

// Handle executes the query to retrieve one product by SKU.
// Returns an ObjectNotFoundError if no product with the SKU exists.
func (h GetProductBySKUQueryHandler) Handle(
	ctx context.Context,
	query GetProductBySKUQuery,
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
		WHERE sku = ?
	`, query.SKU()).Row()

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
			"sku", query.SKU(), err)
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

package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves a single catalog entry by its identifier.
type GetProductQuery struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query to retrieve one product by ID.
func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	query := GetProductQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setProductID(productID); err != nil {
		return GetProductQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductQueryIsNotConstructed if validation fails.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the identifier of the product to fetch.
func (q GetProductQuery) ProductID() kernel.UUID {
	return q.productID
}

func (q *GetProductQuery) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	q.productID = productID
	return nil
}

// GetProductQueryResponse represents one catalog entry in the read model.
type GetProductQueryResponse struct {
	ID            kernel.UUID
	Name          string
	SKU           string
	StockQuantity int
	PricePerUnit  decimal.Decimal
}

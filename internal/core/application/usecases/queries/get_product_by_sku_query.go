package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var (
	ErrGetProductBySKUQueryIsNotConstructed = errors.New(
		"GetProductBySKUQuery must be created via NewGetProductBySKUQuery constructor",
	)
	ErrSKUIsRequired = errors.New("sku is required")
)

// GetProductBySKUQuery retrieves a single catalog entry by its SKU.
// SKUs are unique across the catalog, so at most one product matches.
type GetProductBySKUQuery struct { //nolint:recvcheck //using for validation
	sku string

	guard guard.ConstructorGuard
}

// NewGetProductBySKUQuery creates a query to retrieve one product by SKU.
func NewGetProductBySKUQuery(sku string) (GetProductBySKUQuery, error) {
	query := GetProductBySKUQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSKU(sku); err != nil {
		return GetProductBySKUQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductBySKUQueryIsNotConstructed if validation fails.
func (q GetProductBySKUQuery) Validate() error {
	return q.guard.Validate(ErrGetProductBySKUQueryIsNotConstructed)
}

// SKU returns the stock keeping unit to look up.
func (q GetProductBySKUQuery) SKU() string {
	return q.sku
}

func (q *GetProductBySKUQuery) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}

	q.sku = sku
	return nil
}

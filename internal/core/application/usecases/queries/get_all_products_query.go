// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllProductsQueryIsNotConstructed = errors.New(
	"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
)

// GetAllProductsQuery retrieves the complete catalog.
// Returns every product with its current stock level and price.
//
// Example:
//
//	query := NewGetAllProductsQuery()
//	handler := NewGetAllProductsQueryHandler(db)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve catalog: %w", err)
//	}
//
//	for _, p := range products {
//	    fmt.Printf("%s (%s): %d in stock\n", p.Name, p.SKU, p.StockQuantity)
//	}
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a query to retrieve the full catalog.
// This is a parameterless query that fetches the complete product list.
func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllProductsQueryIsNotConstructed if validation fails.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// GetAllProductsQueryResponse represents one catalog entry in the read model.
type GetAllProductsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	SKU           string
	StockQuantity int
	PricePerUnit  decimal.Decimal
}

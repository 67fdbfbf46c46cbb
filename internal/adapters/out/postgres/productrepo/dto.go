// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the product domain aggregate, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product aggregates.
// The SKU carries a unique index enforcing catalog-wide uniqueness at the
// storage level, backing the duplicate check done in the use case layer.
type ProductDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	SKU           string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	StockQuantity int             `gorm:"type:int;not null"`
	PricePerUnit  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(product *product.Product) ProductDTO {
	return ProductDTO{
		ID:            product.ID().Bytes(),
		Name:          product.Name(),
		SKU:           product.SKU(),
		StockQuantity: product.StockQuantity(),
		PricePerUnit:  product.PricePerUnit(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.SKU, dto.PricePerUnit, dto.StockQuantity)
}

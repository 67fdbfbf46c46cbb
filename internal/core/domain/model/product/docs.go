// Package product provides the catalog side of the warehouse domain model.
// It implements the Product aggregate root, which owns the authoritative
// stock counter and current price for a single SKU.
//
// Key business rules:
//   - Stock quantity never goes negative; every mutation checks before applying
//   - Reserve/Return pair implements order-side stock reservation and release
//   - AdjustStock applies manual corrections with an explicit underflow error
//   - SKU and identity are immutable once the product is created
//
// The package follows Domain-Driven Design principles: private fields,
// validating constructors, and behavior methods that keep invariants local.
package product

package product

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrSKUIsRequired is returned when attempting to create a product without a SKU.
	ErrSKUIsRequired = errs.NewValueIsRequiredError("sku")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents a stocked item in the warehouse catalog. It is an
// aggregate root that owns the single authoritative stock counter for its SKU.
//
// Product follows these invariants:
//   - Identity and SKU are immutable after creation
//   - Stock quantity is never negative
//   - Price per unit is always positive
//   - Can only be created through NewProduct or RestoreProduct
//
// Stock changes flow exclusively through Reserve, Return, and AdjustStock so
// that every mutation carries its own underflow check. Order items hold a weak
// reference to the product; they never manage its lifecycle.
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the human-readable product name
	name string

	// sku is the unique business key, immutable after creation
	sku string

	// stockQuantity is the number of units currently on hand (never negative)
	stockQuantity int

	// pricePerUnit is the current selling price (always positive)
	pricePerUnit decimal.Decimal

	// guard ensures the product was created via a constructor
	guard guard.ConstructorGuard
}

// NewProduct creates a new Product with validation. This is the only way,
// besides RestoreProduct, to obtain a valid Product instance.
//
// Validation rules:
//   - id must be a valid UUID
//   - name and sku must be non-empty
//   - pricePerUnit must be greater than zero
//   - stockQuantity must not be negative
//
// SKU uniqueness is a catalog-wide rule and is enforced at the use case
// layer against storage, not here.
func NewProduct(
	id kernel.UUID,
	name string,
	sku string,
	pricePerUnit decimal.Decimal,
	stockQuantity int,
) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setSKU(sku),
		p.setPricePerUnit(pricePerUnit),
		p.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistent storage. The same
// validation as NewProduct applies, so corrupted rows fail loudly instead of
// producing an invalid aggregate.
func RestoreProduct(
	id kernel.UUID,
	name string,
	sku string,
	pricePerUnit decimal.Decimal,
	stockQuantity int,
) (*Product, error) {
	return NewProduct(id, name, sku, pricePerUnit, stockQuantity)
}

// Validate ensures the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// SKU returns the product's unique business key.
func (p *Product) SKU() string {
	return p.sku
}

// StockQuantity returns the number of units currently on hand.
func (p *Product) StockQuantity() int {
	return p.stockQuantity
}

// PricePerUnit returns the current selling price.
func (p *Product) PricePerUnit() decimal.Decimal {
	return p.pricePerUnit
}

// Reserve debits quantity units from stock on behalf of an order item.
//
// Returns an InsufficientStockError when stock cannot cover the request;
// the product is left unchanged in that case.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	if p.stockQuantity < quantity {
		return errs.NewInsufficientStockError(p.sku, quantity, p.stockQuantity)
	}

	p.stockQuantity -= quantity
	return nil
}

// Return credits quantity units back to stock, reversing a reservation.
func (p *Product) Return(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	p.stockQuantity += quantity
	return nil
}

// AdjustStock applies a signed correction to the stock counter, for manual
// catalog maintenance. Returns a StockUnderflowError when the result would
// be negative; the product is left unchanged in that case.
func (p *Product) AdjustStock(delta int) error {
	if p.stockQuantity+delta < 0 {
		return errs.NewStockUnderflowError(p.sku, delta, p.stockQuantity)
	}

	p.stockQuantity += delta
	return nil
}

// Rename changes the product name.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// ChangePrice sets a new price per unit. Existing order items keep the price
// captured when they were added.
func (p *Product) ChangePrice(pricePerUnit decimal.Decimal) error {
	return p.setPricePerUnit(pricePerUnit)
}

// SetStock overwrites the stock counter with an absolute value.
func (p *Product) SetStock(quantity int) error {
	return p.setStockQuantity(quantity)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}
	p.sku = sku
	return nil
}

func (p *Product) setPricePerUnit(pricePerUnit decimal.Decimal) error {
	if pricePerUnit.Sign() <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"pricePerUnit",
			errors.New(pricePerUnit.String()+" is not greater than 0"),
		)
	}
	p.pricePerUnit = pricePerUnit
	return nil
}

func (p *Product) setStockQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stockQuantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	p.stockQuantity = quantity
	return nil
}

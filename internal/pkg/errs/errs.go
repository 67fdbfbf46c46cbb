package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
// Every typed error in this package unwraps to exactly one of these.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")

	ErrDuplicateSKU      = errors.New("sku already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrStockUnderflow    = errors.New("stock underflow")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrReferencedEntity  = errors.New("entity is referenced")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return sanitize(msg)
	}
	return sanitize(fmt.Sprintf("%s (cause: %s)", msg, cause))
}

// ObjectNotFoundError indicates that a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause == nil {
		return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
	}
	return withCause(fmt.Sprintf("%s: param is: %s, ID is: %s", ErrObjectNotFound, e.ParamName, e.ID), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value lies outside its allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max),
		e.Cause,
	)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that an aggregate version check failed.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName), e.Cause)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// DuplicateSKUError indicates an attempt to create a product with a SKU
// that is already taken by another product.
type DuplicateSKUError struct {
	SKU   string
	Cause error
}

func NewDuplicateSKUError(sku string) *DuplicateSKUError {
	return &DuplicateSKUError{SKU: sku}
}

func NewDuplicateSKUErrorWithCause(sku string, cause error) *DuplicateSKUError {
	return &DuplicateSKUError{SKU: sku, Cause: cause}
}

func (e *DuplicateSKUError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrDuplicateSKU, e.SKU), e.Cause)
}

func (e *DuplicateSKUError) Unwrap() error {
	return ErrDuplicateSKU
}

// InsufficientStockError indicates that a product does not carry enough
// stock to satisfy a requested quantity.
type InsufficientStockError struct {
	SKU       string
	Requested int
	Available int
}

func NewInsufficientStockError(sku string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{SKU: sku, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return sanitize(fmt.Sprintf("%s: requested %d of %s, available %d",
		ErrInsufficientStock, e.Requested, e.SKU, e.Available))
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// StockUnderflowError indicates that a stock adjustment would drive the
// quantity below zero.
type StockUnderflowError struct {
	SKU       string
	Delta     int
	Available int
}

func NewStockUnderflowError(sku string, delta, available int) *StockUnderflowError {
	return &StockUnderflowError{SKU: sku, Delta: delta, Available: available}
}

func (e *StockUnderflowError) Error() string {
	return sanitize(fmt.Sprintf("%s: adjusting %s by %d with %d available",
		ErrStockUnderflow, e.SKU, e.Delta, e.Available))
}

func (e *StockUnderflowError) Unwrap() error {
	return ErrStockUnderflow
}

// InvalidStateError indicates that an operation is not allowed in the
// entity's current lifecycle state.
type InvalidStateError struct {
	Operation string
	State     string
}

func NewInvalidStateError(operation, state string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, State: state}
}

func (e *InvalidStateError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s is not allowed in state %s", ErrInvalidState, e.Operation, e.State))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InvalidTransitionError indicates a status jump outside the allowed edges
// of a state machine.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ReferencedEntityError indicates that a delete is blocked because another
// entity still holds a reference.
type ReferencedEntityError struct {
	ParamName    string
	ID           any
	ReferencedBy string
}

func NewReferencedEntityError(paramName string, id any, referencedBy string) *ReferencedEntityError {
	return &ReferencedEntityError{ParamName: paramName, ID: id, ReferencedBy: referencedBy}
}

func (e *ReferencedEntityError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s is referenced by %s",
		ErrReferencedEntity, e.ParamName, e.ID, e.ReferencedBy))
}

func (e *ReferencedEntityError) Unwrap() error {
	return ErrReferencedEntity
}

package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderTotalQueryIsNotConstructed = errors.New(
	"GetOrderTotalQuery must be created via NewGetOrderTotalQuery constructor",
)

// GetOrderTotalQuery computes the monetary total of one order.
// The total is the sum over the order's lines of quantity times the
// captured unit price; later catalog price changes do not affect it.
type GetOrderTotalQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTotalQuery creates a query to compute an order's total.
func NewGetOrderTotalQuery(orderID kernel.UUID) (GetOrderTotalQuery, error) {
	query := GetOrderTotalQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderTotalQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderTotalQueryIsNotConstructed if validation fails.
func (q GetOrderTotalQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTotalQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to total.
func (q GetOrderTotalQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderTotalQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderTotalQueryResponse carries the computed total of an order.
// An order with no lines totals zero.
type GetOrderTotalQueryResponse struct {
	OrderID     kernel.UUID
	TotalAmount decimal.Decimal
}

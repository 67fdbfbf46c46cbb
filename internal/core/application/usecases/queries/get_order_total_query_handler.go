package queries

import (
	"context"
	"database/sql"
	"errors"

	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderTotalQueryHandler computes order totals in the database.
// The aggregation runs in SQL so the lines never cross the wire.
type GetOrderTotalQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTotalQueryHandler creates a handler for order total queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTotalQueryHandler(db *gorm.DB) GetOrderTotalQueryHandler {
	return GetOrderTotalQueryHandler{db: db}
}

// Handle executes the query to compute one order's total.
// Returns an ObjectNotFoundError if no order with the ID exists; an existing
// order with no lines totals zero.
func (h GetOrderTotalQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTotalQuery,
) (GetOrderTotalQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTotalQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(oi.quantity * oi.unit_price), 0)
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.id = ?
		GROUP BY o.id
	`, query.OrderID().Bytes()).Row()

	response := GetOrderTotalQueryResponse{OrderID: query.OrderID()}

	err := row.Scan(&response.TotalAmount)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderTotalQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"orderID", query.OrderID(), err)
	}
	if err != nil {
		return GetOrderTotalQueryResponse{}, err
	}

	return response, nil
}

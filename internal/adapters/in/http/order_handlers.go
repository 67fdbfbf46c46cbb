package http

import (
	"net/http"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// NewOrder is the request body for opening an order.
type NewOrder struct {
	CustomerName string `json:"customerName"`
}

// NewOrderItem is the request body for reserving an order line.
type NewOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderStatusUpdate is the request body for direct status transitions.
type OrderStatusUpdate struct {
	Status string `json:"status"`
}

// OrderItem is the JSON representation of one order line.
type OrderItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Order is the JSON representation of one order.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	PlacedAt     time.Time   `json:"placedAt"`
	Status       string      `json:"status"`
	Items        []OrderItem `json:"items,omitempty"`
}

// OrderTotal is the JSON representation of an order's computed total.
type OrderTotal struct {
	OrderID     string          `json:"orderId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// GetOrders handles GET /api/v1/orders - retrieves all order headers.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:           o.ID.String(),
			CustomerName: o.CustomerName,
			PlacedAt:     o.PlacedAt,
			Status:       o.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	result, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]OrderItem, len(result.Items))
	for i, item := range result.Items {
		items[i] = OrderItem{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:           result.ID.String(),
		CustomerName: result.CustomerName,
		PlacedAt:     result.PlacedAt,
		Status:       result.Status,
		Items:        items,
	})
}

// GetOrderTotal handles GET /api/v1/orders/:id/total - computes the order total.
func (s *Server) GetOrderTotal(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderTotalQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	result, err := s.handlers.GetOrderTotal.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderTotal{
		OrderID:     result.OrderID.String(),
		TotalAmount: result.TotalAmount,
	})
}

// CreateOrder handles POST /api/v1/orders - opens a new pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewOpenOrderCommand(orderID, newOrder.CustomerName)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.handlers.OpenOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// AddOrderItem handles POST /api/v1/orders/:id/items - reserves an order line.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var newItem NewOrderItem
	if err = ctx.Bind(&newItem); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(newItem.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, productID, newItem.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.handlers.AddOrderItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:id/items/:itemId - undoes a reservation.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	itemID, err := pathUUID(ctx, "itemId")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.handlers.RemoveOrderItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FulfillOrder handles POST /api/v1/orders/:id/fulfill - commits a pending order.
func (s *Server) FulfillOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewFulfillOrderCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.handlers.FulfillOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - abandons a pending order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - direct transition.
// Carries the same side effects as the fulfill and cancel endpoints.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var update OrderStatusUpdate
	if err = ctx.Bind(&update); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(update.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if handleErr := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DiscardOrder handles POST /api/v1/orders/:id/discard - drops an order
// abandoned during authoring. A no-op if the order picked up lines.
func (s *Server) DiscardOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDiscardEmptyOrderCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.handlers.DiscardEmptyOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - erases an order, its lines
// and its shipment, crediting reserved stock back where appropriate.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

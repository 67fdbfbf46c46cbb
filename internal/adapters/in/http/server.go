// Package http exposes the warehouse use cases over a JSON REST API.
// It translates requests into commands and queries and maps domain
// errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	AddProduct           commands.AddProductCommandHandler
	UpdateProduct        commands.UpdateProductCommandHandler
	AdjustStock          commands.AdjustStockCommandHandler
	RemoveProduct        commands.RemoveProductCommandHandler
	OpenOrder            commands.OpenOrderCommandHandler
	AddOrderItem         commands.AddOrderItemCommandHandler
	RemoveOrderItem      commands.RemoveOrderItemCommandHandler
	FulfillOrder         commands.FulfillOrderCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	UpdateOrderStatus    commands.UpdateOrderStatusCommandHandler
	DeleteOrder          commands.DeleteOrderCommandHandler
	DiscardEmptyOrder    commands.DiscardEmptyOrderCommandHandler
	UpdateShipmentStatus commands.UpdateShipmentStatusCommandHandler
	DeleteShipment       commands.DeleteShipmentCommandHandler

	GetAllProducts  queries.GetAllProductsQueryHandler
	GetProduct      queries.GetProductQueryHandler
	GetProductBySKU queries.GetProductBySKUQueryHandler
	GetAllOrders    queries.GetAllOrdersQueryHandler
	GetOrder        queries.GetOrderQueryHandler
	GetOrderTotal   queries.GetOrderTotalQueryHandler
	GetAllShipments queries.GetAllShipmentsQueryHandler
	GetShipment     queries.GetShipmentQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts every API endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/:id", s.GetProduct)
	api.PATCH("/products/:id", s.UpdateProduct)
	api.POST("/products/:id/stock", s.AdjustStock)
	api.DELETE("/products/:id", s.DeleteProduct)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/total", s.GetOrderTotal)
	api.POST("/orders/:id/items", s.AddOrderItem)
	api.DELETE("/orders/:id/items/:itemId", s.RemoveOrderItem)
	api.POST("/orders/:id/fulfill", s.FulfillOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/discard", s.DiscardOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.GET("/shipments", s.GetShipments)
	api.GET("/shipments/:id", s.GetShipment)
	api.PATCH("/shipments/:id/status", s.UpdateShipmentStatus)
	api.DELETE("/shipments/:id", s.DeleteShipment)
}

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP status codes.
// Unrecognized errors surface as 500 without leaking internals.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateSKU),
		errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrStockUnderflow),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrReferencedEntity):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// pathUUID parses the named path parameter as a UUID.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

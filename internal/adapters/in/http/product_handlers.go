package http

import (
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// NewProduct is the request body for product creation.
type NewProduct struct {
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	PricePerUnit  decimal.Decimal `json:"pricePerUnit"`
	StockQuantity int             `json:"stockQuantity"`
}

// ProductPatch is the request body for partial product updates.
// Absent fields keep their current values.
type ProductPatch struct {
	Name          *string          `json:"name,omitempty"`
	PricePerUnit  *decimal.Decimal `json:"pricePerUnit,omitempty"`
	StockQuantity *int             `json:"stockQuantity,omitempty"`
}

// StockAdjustment is the request body for manual stock corrections.
type StockAdjustment struct {
	Delta int `json:"delta"`
}

// Product is the JSON representation of one catalog entry.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	PricePerUnit  decimal.Decimal `json:"pricePerUnit"`
	StockQuantity int             `json:"stockQuantity"`
}

// GetProducts handles GET /api/v1/products - retrieves the catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	if sku := ctx.QueryParam("sku"); sku != "" {
		return s.getProductBySKU(ctx, sku)
	}

	query := queries.NewGetAllProductsQuery()

	products, err := s.handlers.GetAllProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{
			ID:            p.ID.String(),
			Name:          p.Name,
			SKU:           p.SKU,
			PricePerUnit:  p.PricePerUnit,
			StockQuantity: p.StockQuantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) getProductBySKU(ctx echo.Context, sku string) error {
	query, err := queries.NewGetProductBySKUQuery(sku)
	if err != nil {
		return badRequest(ctx, "Invalid sku: "+err.Error())
	}

	product, err := s.handlers.GetProductBySKU.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Product{
		ID:            product.ID.String(),
		Name:          product.Name,
		SKU:           product.SKU,
		PricePerUnit:  product.PricePerUnit,
		StockQuantity: product.StockQuantity,
	})
}

// GetProduct handles GET /api/v1/products/:id - retrieves one catalog entry.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	product, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Product{
		ID:            product.ID.String(),
		Name:          product.Name,
		SKU:           product.SKU,
		PricePerUnit:  product.PricePerUnit,
		StockQuantity: product.StockQuantity,
	})
}

// CreateProduct handles POST /api/v1/products - registers a catalog entry.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var newProduct NewProduct
	if err := ctx.Bind(&newProduct); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewAddProductCommand(
		productID,
		newProduct.Name,
		newProduct.SKU,
		newProduct.PricePerUnit,
		newProduct.StockQuantity,
	)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if handleErr := s.handlers.AddProduct.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": productID.String()})
}

// UpdateProduct handles PATCH /api/v1/products/:id - partial catalog update.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var patch ProductPatch
	if err = ctx.Bind(&patch); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(id, patch.Name, patch.PricePerUnit, patch.StockQuantity)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if handleErr := s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdjustStock handles POST /api/v1/products/:id/stock - manual stock correction.
func (s *Server) AdjustStock(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var adjustment StockAdjustment
	if err = ctx.Bind(&adjustment); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdjustStockCommand(id, adjustment.Delta)
	if err != nil {
		return badRequest(ctx, "Invalid adjustment: "+err.Error())
	}

	if handleErr := s.handlers.AdjustStock.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/:id - removes a catalog entry.
// Products referenced by order lines cannot be removed.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewRemoveProductCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	if handleErr := s.handlers.RemoveProduct.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/szoz/northwind-api/internal/service"
)

type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new instance of ProductHandler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns all product names and their count --> /products
func (h *ProductHandler) List(c echo.Context) error {
	names, err := h.productService.ListNames(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if names == nil {
		names = []string{}
	}

	return c.JSON(200, map[string]interface{}{
		"products":         names,
		"products_counter": len(names),
	})
}

// GetByID returns a single product --> /products/:id
func (h *ProductHandler) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid product ID"})
	}

	product, err := h.productService.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(200, product)
}

// Orders returns the orders placed for a product --> /products/:id/orders
func (h *ProductHandler) Orders(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid product ID"})
	}

	orders, err := h.productService.Orders(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(200, map[string]interface{}{"orders": orders})
}

// ListExtended returns products with category and supplier names --> /products_extended
func (h *ProductHandler) ListExtended(c echo.Context) error {
	products, err := h.productService.ListExtended(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(200, map[string]interface{}{"products_extended": products})
}

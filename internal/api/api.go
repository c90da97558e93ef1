package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/szoz/northwind-api/internal/repository"
	"github.com/szoz/northwind-api/internal/service"
)

// Register mounts all API routes on the given echo instance.
func Register(e *echo.Echo, products *ProductHandler, categories *CategoryHandler,
	customers *CustomerHandler, employees *EmployeeHandler, suppliers *SupplierHandler) {

	e.GET("/", redirectToDocs)
	e.GET("/docs", getDocs)

	e.GET("/products", products.List)
	e.GET("/products/:id", products.GetByID)
	e.GET("/products/:id/orders", products.Orders)
	e.GET("/products_extended", products.ListExtended)

	e.GET("/categories", categories.List)
	e.POST("/categories", categories.Create)
	e.PUT("/categories/:id", categories.Update)
	e.DELETE("/categories/:id", categories.Delete)

	e.GET("/customers", customers.List)
	e.GET("/employees", employees.List)

	e.GET("/suppliers", suppliers.List)
	e.GET("/suppliers/:id", suppliers.GetByID)
}

// writeError maps service errors to HTTP status codes. Anything that is not
// a known client error surfaces as an opaque 500; repository details never
// reach the response body.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidOrder):
		return c.JSON(400, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(404, map[string]string{"error": err.Error()})
	default:
		return c.JSON(500, map[string]string{"error": "internal server error"})
	}
}

// redirectToDocs sends the root endpoint to the API documentation --> /
func redirectToDocs(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/docs")
}

// getDocs returns a plain route index --> /docs
func getDocs(c echo.Context) error {
	return c.JSON(200, map[string]interface{}{
		"service": "northwind-api",
		"endpoints": []map[string]string{
			{"method": "GET", "path": "/products", "description": "list product names and their count"},
			{"method": "GET", "path": "/products/:id", "description": "single product"},
			{"method": "GET", "path": "/products/:id/orders", "description": "orders placed for a product"},
			{"method": "GET", "path": "/products_extended", "description": "products with category and supplier names"},
			{"method": "GET", "path": "/categories", "description": "list categories"},
			{"method": "POST", "path": "/categories", "description": "create category"},
			{"method": "PUT", "path": "/categories/:id", "description": "update category name"},
			{"method": "DELETE", "path": "/categories/:id", "description": "delete category"},
			{"method": "GET", "path": "/customers", "description": "list customers with full addresses"},
			{"method": "GET", "path": "/employees", "description": "list employees, supports order/limit/offset"},
			{"method": "GET", "path": "/suppliers", "description": "list suppliers"},
			{"method": "GET", "path": "/suppliers/:id", "description": "single supplier"},
		},
	})
}

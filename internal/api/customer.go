package api

import (
	"github.com/labstack/echo/v4"

	"github.com/szoz/northwind-api/internal/service"
)

type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new instance of CustomerHandler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List returns all customers --> /customers
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.customerService.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(200, map[string]interface{}{"customers": customers})
}

package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/szoz/northwind-api/internal/service"
)

type SupplierHandler struct {
	supplierService *service.SupplierService
}

// NewSupplierHandler creates a new instance of SupplierHandler
func NewSupplierHandler(supplierService *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// List returns all suppliers --> /suppliers
func (h *SupplierHandler) List(c echo.Context) error {
	suppliers, err := h.supplierService.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(200, suppliers)
}

// GetByID returns a single supplier --> /suppliers/:id
func (h *SupplierHandler) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid supplier ID"})
	}

	supplier, err := h.supplierService.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(200, supplier)
}

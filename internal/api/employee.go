package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/szoz/northwind-api/internal/entity"
	"github.com/szoz/northwind-api/internal/service"
)

type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

// NewEmployeeHandler creates a new instance of EmployeeHandler
func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// List returns employees, optionally sorted and paginated --> /employees
// Query parameters: order (first_name, last_name or city), limit, offset.
func (h *EmployeeHandler) List(c echo.Context) error {
	limit, err := queryInt(c, "limit", service.NoLimit)
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid limit"})
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid offset"})
	}

	employees, err := h.employeeService.List(c.Request().Context(), c.QueryParam("order"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	if employees == nil {
		employees = []entity.Employee{}
	}

	return c.JSON(200, map[string]interface{}{"employees": employees})
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

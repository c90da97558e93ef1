package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/szoz/northwind-api/internal/entity"
	"github.com/szoz/northwind-api/internal/service"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new instance of CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type categoryRequest struct {
	Name string `json:"name"`
}

// List returns all categories --> /categories
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if categories == nil {
		categories = []entity.Category{}
	}

	return c.JSON(200, map[string]interface{}{"categories": categories})
}

// Create inserts a new category --> POST /categories
func (h *CategoryHandler) Create(c echo.Context) error {
	body := categoryRequest{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	category, err := h.categoryService.Create(c.Request().Context(), body.Name)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(201, category)
}

// Update overwrites a category name --> PUT /categories/:id
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid category ID"})
	}

	body := categoryRequest{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	category, err := h.categoryService.Update(c.Request().Context(), id, body.Name)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(200, category)
}

// Delete removes a category --> DELETE /categories/:id
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid category ID"})
	}

	deleted, err := h.categoryService.Delete(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(200, map[string]int{"deleted": deleted})
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	catalogdomain "github.com/balasagoth/mi-supermercado/internal/catalog/domain"
	catalogcommand "github.com/balasagoth/mi-supermercado/internal/catalog/usecase/command"
)

// ListCategories handles GET /admin/categories
func (h *AdminHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categories.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list categories"})
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// CreateCategory handles POST /admin/categories
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	category, err := h.createCategory.Handle(catalogcommand.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, catalogdomain.ErrDuplicateName) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Category name already exists"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// DeleteCategory handles DELETE /admin/categories/:id
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	if err := h.deleteCategory.Handle(catalogcommand.DeleteCategoryCommand{ID: uint(id)}); err != nil {
		if errors.Is(err, catalogdomain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete category"})
	}
	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}

package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	catalogdomain "github.com/balasagoth/mi-supermercado/internal/catalog/domain"
	catalogcommand "github.com/balasagoth/mi-supermercado/internal/catalog/usecase/command"
)

// ListProducts handles GET /admin/products, including unavailable products
func (h *AdminHandler) ListProducts(c *fiber.Ctx) error {
	filter := catalogdomain.ProductFilter{
		Search: c.Query("q"),
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category ID"})
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}

	products, err := h.products.FindAll(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list products"})
	}
	return c.JSON(fiber.Map{"products": products})
}

// CreateProduct handles POST /admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		PriceCents  int64  `json:"price_cents"`
		Stock       int    `json:"stock"`
		ImageURL    string `json:"image_url"`
		Available   bool   `json:"available"`
		CategoryID  *uint  `json:"category_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	product, err := h.createProduct.Handle(catalogcommand.CreateProductCommand{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct handles PUT /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		PriceCents  *int64  `json:"price_cents"`
		ImageURL    *string `json:"image_url"`
		Available   *bool   `json:"available"`
		CategoryID  *uint   `json:"category_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	product, err := h.updateProduct.Handle(c.UserContext(), catalogcommand.UpdateProductCommand{
		ID:          uint(id),
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		if errors.Is(err, catalogdomain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(product)
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.deleteProduct.Handle(catalogcommand.DeleteProductCommand{ID: uint(id)}); err != nil {
		switch {
		case errors.Is(err, catalogdomain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		case errors.Is(err, catalogdomain.ErrProductReferenced):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Product is referenced by existing orders"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete product"})
		}
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

// SetStock handles PUT /admin/products/:id/stock
func (h *AdminHandler) SetStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req struct {
		Stock int `json:"stock"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.setStock.Handle(catalogcommand.SetStockCommand{ProductID: uint(id), Stock: req.Stock}); err != nil {
		if errors.Is(err, catalogdomain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Stock updated"})
}

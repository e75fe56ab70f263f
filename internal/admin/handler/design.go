package handler

import (
	"github.com/gofiber/fiber/v2"

	designcommand "github.com/balasagoth/mi-supermercado/internal/design/usecase/command"
	designquery "github.com/balasagoth/mi-supermercado/internal/design/usecase/query"
)

// GetDesign handles GET /admin/design
func (h *AdminHandler) GetDesign(c *fiber.Ctx) error {
	design, err := h.getDesign.Handle(designquery.GetDesignQuery{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load site design"})
	}
	return c.JSON(design)
}

// UpdateDesign handles PUT /admin/design
func (h *AdminHandler) UpdateDesign(c *fiber.Ctx) error {
	var req struct {
		PrimaryColor *string `json:"primary_color"`
		FontFamily   *string `json:"font_family"`
		LogoURL      *string `json:"logo_url"`
		BannerURL    *string `json:"banner_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	design, err := h.updateDesign.Handle(designcommand.UpdateDesignCommand{
		PrimaryColor: req.PrimaryColor,
		FontFamily:   req.FontFamily,
		LogoURL:      req.LogoURL,
		BannerURL:    req.BannerURL,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(design)
}

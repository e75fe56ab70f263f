package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	orderdomain "github.com/balasagoth/mi-supermercado/internal/order/domain"
	ordercommand "github.com/balasagoth/mi-supermercado/internal/order/usecase/command"
)

// ListOrders handles GET /admin/orders
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.orders.FindAll(c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list orders"})
	}
	return c.JSON(fiber.Map{"orders": orders})
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	cmd := ordercommand.UpdateStatusCommand{
		OrderID: uint(id),
		Status:  orderdomain.OrderStatus(req.Status),
	}
	if err := h.updateStatus.Handle(cmd); err != nil {
		if errors.Is(err, orderdomain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Order status updated"})
}

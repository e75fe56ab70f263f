package command

import (
	"fmt"

	"github.com/balasagoth/mi-supermercado/internal/catalog/domain"
)

// SetStockCommand represents an administrative stock edit
type SetStockCommand struct {
	ProductID uint
	Stock     int
}

// SetStockHandler handles set stock command
type SetStockHandler struct {
	repo domain.ProductRepository
}

// NewSetStockHandler creates a new set stock handler
func NewSetStockHandler(repo domain.ProductRepository) *SetStockHandler {
	return &SetStockHandler{repo: repo}
}

// Handle executes the set stock command. Stock never goes negative.
func (h *SetStockHandler) Handle(cmd SetStockCommand) error {
	if cmd.ProductID == 0 {
		return fmt.Errorf("product_id is required")
	}
	if cmd.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	return h.repo.SetStock(cmd.ProductID, cmd.Stock)
}

package command

import (
	"github.com/balasagoth/mi-supermercado/internal/catalog/domain"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler handles delete product command
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle executes the delete product command. Fails with
// ErrProductReferenced while any order line points at the product.
func (h *DeleteProductHandler) Handle(cmd DeleteProductCommand) error {
	return h.repo.Delete(cmd.ID)
}

package command

import (
	"context"
	"fmt"

	"github.com/balasagoth/mi-supermercado/internal/catalog/domain"
)

// UpdateProductCommand represents the command to update a product
type UpdateProductCommand struct {
	ID          uint
	Name        *string
	Description *string
	PriceCents  *int64
	ImageURL    *string
	Available   *bool
	CategoryID  *uint
}

// UpdateProductHandler handles update product command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command. Stock is deliberately not
// updatable here; it goes through SetStockHandler so inventory edits stay
// auditable on their own path.
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	product, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, fmt.Errorf("name cannot be empty")
		}
		product.Name = *cmd.Name
	}
	if cmd.Description != nil {
		product.Description = *cmd.Description
	}
	if cmd.PriceCents != nil {
		if *cmd.PriceCents <= 0 {
			return nil, fmt.Errorf("price must be greater than 0")
		}
		product.PriceCents = *cmd.PriceCents
	}
	if cmd.ImageURL != nil {
		product.ImageURL = *cmd.ImageURL
	}
	if cmd.Available != nil {
		product.Available = *cmd.Available
	}
	if cmd.CategoryID != nil {
		product.CategoryID = cmd.CategoryID
	}

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

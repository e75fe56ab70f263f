package query

import (
	"fmt"

	"github.com/balasagoth/mi-supermercado/internal/catalog/domain"
)

// ListCategoriesHandler handles list categories query
type ListCategoriesHandler struct {
	repo domain.CategoryRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle() ([]domain.Category, error) {
	categories, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

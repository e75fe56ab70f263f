package query

import (
	"context"
	"fmt"

	"github.com/balasagoth/mi-supermercado/internal/catalog/domain"
)

// ListProductsQuery represents a filtered catalog listing request
type ListProductsQuery struct {
	CategoryID *uint
	Search     string
	Limit      int
	Offset     int
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query. Only available products are
// returned; unavailable items never reach the storefront.
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) ([]domain.Product, error) {
	products, err := h.repo.FindAvailable(ctx, domain.ProductFilter{
		CategoryID: q.CategoryID,
		Search:     q.Search,
		Limit:      q.Limit,
		Offset:     q.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

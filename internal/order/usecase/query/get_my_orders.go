package query

import (
	"fmt"

	"github.com/balasagoth/mi-supermercado/internal/order/domain"
)

// GetMyOrdersQuery represents a user's order history request
type GetMyOrdersQuery struct {
	UserID uint
	Limit  int
	Offset int
}

// GetMyOrdersHandler handles get my orders query
type GetMyOrdersHandler struct {
	repo domain.OrderRepository
}

// NewGetMyOrdersHandler creates a new get my orders handler
func NewGetMyOrdersHandler(repo domain.OrderRepository) *GetMyOrdersHandler {
	return &GetMyOrdersHandler{repo: repo}
}

// Handle executes the get my orders query, newest first
func (h *GetMyOrdersHandler) Handle(q GetMyOrdersQuery) ([]domain.Order, error) {
	if q.UserID == 0 {
		return nil, fmt.Errorf("user_id is required")
	}
	return h.repo.FindByUserID(q.UserID, q.Limit, q.Offset)
}

package query

import (
	"github.com/balasagoth/mi-supermercado/internal/order/domain"
)

// GetOrderQuery represents the query to get an order by ID
type GetOrderQuery struct {
	ID uint
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(q GetOrderQuery) (*domain.Order, error) {
	return h.repo.FindByID(q.ID)
}

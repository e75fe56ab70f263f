package command

import (
	"fmt"

	"github.com/balasagoth/mi-supermercado/internal/order/domain"
)

// UpdateStatusCommand represents an administrative status change
type UpdateStatusCommand struct {
	OrderID uint
	Status  domain.OrderStatus
}

// UpdateStatusHandler handles update status command
type UpdateStatusHandler struct {
	repo domain.OrderRepository
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(repo domain.OrderRepository) *UpdateStatusHandler {
	return &UpdateStatusHandler{repo: repo}
}

// Handle executes the update status command. Orders are never deleted;
// status changes are the only post-creation mutation.
func (h *UpdateStatusHandler) Handle(cmd UpdateStatusCommand) error {
	if cmd.OrderID == 0 {
		return fmt.Errorf("order_id is required")
	}
	if !cmd.Status.Valid() {
		return fmt.Errorf("invalid status: %s", cmd.Status)
	}
	return h.repo.UpdateStatus(cmd.OrderID, cmd.Status)
}

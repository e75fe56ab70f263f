package command

import (
	"context"
	"fmt"

	"github.com/balasagoth/mi-supermercado/internal/cart/domain"
)

// ClearCartCommand empties the session cart
type ClearCartCommand struct {
	SessionID string
}

// ClearCartHandler handles clear cart command
type ClearCartHandler struct {
	store domain.Store
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(store domain.Store) *ClearCartHandler {
	return &ClearCartHandler{store: store}
}

// Handle executes the clear cart command. Clearing an already empty cart is
// a no-op, not an error.
func (h *ClearCartHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := h.store.Clear(ctx, cmd.SessionID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

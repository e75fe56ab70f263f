package command

import (
	"context"
	"fmt"

	"github.com/balasagoth/mi-supermercado/internal/cart/domain"
)

// SetQuantityCommand adjusts or removes a cart entry
type SetQuantityCommand struct {
	SessionID string
	ProductID uint
	Quantity  int
}

// SetQuantityHandler handles set quantity command
type SetQuantityHandler struct {
	store domain.Store
}

// NewSetQuantityHandler creates a new set quantity handler
func NewSetQuantityHandler(store domain.Store) *SetQuantityHandler {
	return &SetQuantityHandler{store: store}
}

// Handle executes the set quantity command. Zero or negative quantity
// removes the entry; the product must already be in the cart (new products
// enter via AddItemHandler only). Stock is not re-validated here;
// materialization is the authoritative check.
func (h *SetQuantityHandler) Handle(ctx context.Context, cmd SetQuantityCommand) (domain.Cart, error) {
	cart, err := h.store.Get(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	if _, ok := cart[cmd.ProductID]; !ok {
		return nil, domain.ErrNotInCart
	}

	if cmd.Quantity > 0 {
		cart[cmd.ProductID] = cmd.Quantity
	} else {
		delete(cart, cmd.ProductID)
	}

	if err := h.store.Save(ctx, cmd.SessionID, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

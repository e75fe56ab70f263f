package command

import (
	"context"
	"fmt"

	"github.com/balasagoth/mi-supermercado/internal/cart/domain"
	catalogdomain "github.com/balasagoth/mi-supermercado/internal/catalog/domain"
)

// AddItemCommand adds one unit of a product to the session cart
type AddItemCommand struct {
	SessionID string
	ProductID uint
}

// AddItemHandler handles add item command
type AddItemHandler struct {
	store    domain.Store
	products catalogdomain.ProductRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(store domain.Store, products catalogdomain.ProductRepository) *AddItemHandler {
	return &AddItemHandler{store: store, products: products}
}

// Handle executes the add item command. Quantities only grow by one per
// call; adjustments go through SetQuantityHandler. The stock check here is
// best-effort: stock can still change between cart edit and payment
// completion, so materialization re-validates.
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (domain.Cart, error) {
	product, err := h.products.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	if product.Stock <= 0 {
		return nil, domain.ErrOutOfStock
	}

	cart, err := h.store.Get(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}

	if current, ok := cart[cmd.ProductID]; ok {
		if current+1 > product.Stock {
			return nil, domain.ErrInsufficientStock
		}
		cart[cmd.ProductID] = current + 1
	} else {
		cart[cmd.ProductID] = 1
	}

	if err := h.store.Save(ctx, cmd.SessionID, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

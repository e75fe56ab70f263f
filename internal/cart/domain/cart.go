package domain

import (
	"context"
	"errors"

	catalogdomain "github.com/balasagoth/mi-supermercado/internal/catalog/domain"
)

// TaxRatePercent is the flat tax applied on top of the cart subtotal
const TaxRatePercent = 19

// Cart is the session-scoped mapping of product id to quantity. It has no
// persistent identity; it lives and dies with the session.
type Cart map[uint]int

// IsEmpty reports whether the cart holds no entries
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// TotalItems returns the summed quantity across all entries
func (c Cart) TotalItems() int {
	total := 0
	for _, qty := range c {
		total += qty
	}
	return total
}

var (
	// ErrOutOfStock is returned when adding a product whose stock is zero
	ErrOutOfStock = errors.New("product out of stock")
	// ErrInsufficientStock is returned when an increment would exceed the
	// product's current stock
	ErrInsufficientStock = errors.New("not enough stock")
	// ErrNotInCart is returned by quantity updates for absent products
	ErrNotInCart = errors.New("product not in cart")
	// ErrEmptyCart is returned when checkout starts on an empty cart
	ErrEmptyCart = errors.New("cart is empty")
)

// Store is the session-store collaborator holding carts keyed by session id
type Store interface {
	Get(ctx context.Context, sessionID string) (Cart, error)
	Save(ctx context.Context, sessionID string, cart Cart) error
	Clear(ctx context.Context, sessionID string) error
}

// ConfirmationStore holds the per-user "order confirmed" marker bridging the
// webhook (no session access) to the next authenticated request, which clears
// the session cart and removes the marker.
type ConfirmationStore interface {
	SetConfirmed(ctx context.Context, userID uint, paymentRef string) error
	GetConfirmed(ctx context.Context, userID uint) (string, bool, error)
	ClearConfirmed(ctx context.Context, userID uint) error
}

// Line is one cart row priced with the product's live price
type Line struct {
	Product        catalogdomain.Product `json:"product"`
	Quantity       int                   `json:"quantity"`
	LineTotalCents int64                 `json:"line_total_cents"`
}

// Summary is the fully priced cart view. Prices are not locked here; they
// are captured only at materialization time.
type Summary struct {
	Lines         []Line `json:"lines"`
	SubtotalCents int64  `json:"subtotal_cents"`
	TaxCents      int64  `json:"tax_cents"`
	TotalCents    int64  `json:"total_cents"`
}

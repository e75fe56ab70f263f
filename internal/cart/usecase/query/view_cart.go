package query

import (
	"context"
	"errors"
	"sort"

	"github.com/balasagoth/mi-supermercado/internal/cart/domain"
	catalogdomain "github.com/balasagoth/mi-supermercado/internal/catalog/domain"
)

// ViewCartQuery prices the session cart
type ViewCartQuery struct {
	SessionID string
}

// ViewCartHandler handles view cart query
type ViewCartHandler struct {
	store    domain.Store
	products catalogdomain.ProductRepository
}

// NewViewCartHandler creates a new view cart handler
func NewViewCartHandler(store domain.Store, products catalogdomain.ProductRepository) *ViewCartHandler {
	return &ViewCartHandler{store: store, products: products}
}

// Handle executes the view cart query. Read-only: lines are priced with the
// product's current live price, subtotal plus a flat 19% tax yields the
// grand total. Entries whose product vanished are skipped rather than
// failing the whole view.
func (h *ViewCartHandler) Handle(ctx context.Context, q ViewCartQuery) (*domain.Summary, error) {
	cart, err := h.store.Get(ctx, q.SessionID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	summary := &domain.Summary{Lines: []domain.Line{}}
	for _, id := range ids {
		product, err := h.products.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, catalogdomain.ErrNotFound) {
				continue
			}
			return nil, err
		}

		qty := cart[id]
		lineTotal := product.PriceCents * int64(qty)
		summary.Lines = append(summary.Lines, domain.Line{
			Product:        *product,
			Quantity:       qty,
			LineTotalCents: lineTotal,
		})
		summary.SubtotalCents += lineTotal
	}

	summary.TaxCents = summary.SubtotalCents * domain.TaxRatePercent / 100
	summary.TotalCents = summary.SubtotalCents + summary.TaxCents

	return summary, nil
}

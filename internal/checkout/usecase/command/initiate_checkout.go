package command

import (
	"context"
	"sort"

	cartdomain "github.com/balasagoth/mi-supermercado/internal/cart/domain"
	catalogdomain "github.com/balasagoth/mi-supermercado/internal/catalog/domain"
	"github.com/balasagoth/mi-supermercado/internal/checkout/domain"
	"github.com/balasagoth/mi-supermercado/internal/checkout/gateway"
)

// InitiateCheckoutCommand starts a payment session for the session cart
type InitiateCheckoutCommand struct {
	SessionID  string
	UserID     uint
	SuccessURL string
	CancelURL  string
}

// InitiateCheckoutResult carries the gateway redirect back to the shopper
type InitiateCheckoutResult struct {
	RedirectURL string `json:"redirect_url"`
	SessionID   string `json:"session_id"`
}

// PaymentGateway is the slice of the gateway client this command needs
type PaymentGateway interface {
	CreateSession(ctx context.Context, req gateway.CreateSessionRequest) (*gateway.CreateSessionResponse, error)
}

// InitiateCheckoutHandler handles checkout initiation
type InitiateCheckoutHandler struct {
	store    cartdomain.Store
	products catalogdomain.ProductRepository
	gateway  PaymentGateway
}

// NewInitiateCheckoutHandler creates a new initiate checkout handler
func NewInitiateCheckoutHandler(store cartdomain.Store, products catalogdomain.ProductRepository, gw PaymentGateway) *InitiateCheckoutHandler {
	return &InitiateCheckoutHandler{store: store, products: products, gateway: gw}
}

// Handle executes the initiate checkout command. Line items carry the
// product's current price; nothing in the catalog or order store changes at
// this step. The full cart plus the user id travel to the gateway inside the
// metadata blob, which the notification hands back for materialization.
func (h *InitiateCheckoutHandler) Handle(ctx context.Context, cmd InitiateCheckoutCommand) (*InitiateCheckoutResult, error) {
	cart, err := h.store.Get(ctx, cmd.SessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, cartdomain.ErrEmptyCart
	}

	ids := make([]uint, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	items := make([]gateway.LineItem, 0, len(cart))
	for _, id := range ids {
		product, err := h.products.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		items = append(items, gateway.LineItem{
			Name:       product.Name,
			UnitAmount: product.PriceCents,
			Quantity:   cart[id],
			ImageURL:   product.ImageURL,
		})
	}

	metadata, err := domain.EncodeMetadata(cmd.UserID, cart)
	if err != nil {
		return nil, err
	}

	session, err := h.gateway.CreateSession(ctx, gateway.CreateSessionRequest{
		LineItems:  items,
		SuccessURL: cmd.SuccessURL,
		CancelURL:  cmd.CancelURL,
		Metadata:   metadata,
	})
	if err != nil {
		return nil, err
	}

	return &InitiateCheckoutResult{
		RedirectURL: session.URL,
		SessionID:   session.ID,
	}, nil
}

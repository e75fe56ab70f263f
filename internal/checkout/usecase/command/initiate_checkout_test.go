package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/balasagoth/mi-supermercado/internal/cart/domain"
	catalogdomain "github.com/balasagoth/mi-supermercado/internal/catalog/domain"
	"github.com/balasagoth/mi-supermercado/internal/checkout/domain"
	"github.com/balasagoth/mi-supermercado/internal/checkout/gateway"
)

func TestInitiateCheckout_EmptyCart(t *testing.T) {
	handler := NewInitiateCheckoutHandler(newFakeCartStore(), newFakeProductRepo(), &fakeGateway{})

	_, err := handler.Handle(context.Background(), InitiateCheckoutCommand{SessionID: "s1", UserID: 1})
	assert.ErrorIs(t, err, cartdomain.ErrEmptyCart)
}

func TestInitiateCheckout_ProductVanished(t *testing.T) {
	store := newFakeCartStore()
	store.carts["s1"] = cartdomain.Cart{42: 1}
	handler := NewInitiateCheckoutHandler(store, newFakeProductRepo(), &fakeGateway{})

	_, err := handler.Handle(context.Background(), InitiateCheckoutCommand{SessionID: "s1", UserID: 1})
	assert.ErrorIs(t, err, catalogdomain.ErrNotFound)
}

func TestInitiateCheckout_GatewayErrorPropagates(t *testing.T) {
	store := newFakeCartStore()
	store.carts["s1"] = cartdomain.Cart{1: 1}
	products := newFakeProductRepo(catalogdomain.Product{ID: 1, Name: "Milk", PriceCents: 150, Stock: 10})
	gw := &fakeGateway{err: domain.ErrGateway}
	handler := NewInitiateCheckoutHandler(store, products, gw)

	_, err := handler.Handle(context.Background(), InitiateCheckoutCommand{SessionID: "s1", UserID: 1})
	assert.ErrorIs(t, err, domain.ErrGateway)
}

func TestInitiateCheckout_CreatesSessionWithLivePrices(t *testing.T) {
	store := newFakeCartStore()
	store.carts["s1"] = cartdomain.Cart{2: 1, 1: 2}
	products := newFakeProductRepo(
		catalogdomain.Product{ID: 1, Name: "Milk", PriceCents: 1000, Stock: 5},
		catalogdomain.Product{ID: 2, Name: "Bread", PriceCents: 2000, Stock: 3},
	)
	gw := &fakeGateway{resp: &gateway.CreateSessionResponse{ID: "cs_123", URL: "https://pay.example/cs_123"}}
	handler := NewInitiateCheckoutHandler(store, products, gw)

	result, err := handler.Handle(context.Background(), InitiateCheckoutCommand{
		SessionID:  "s1",
		UserID:     7,
		SuccessURL: "https://shop.example/success",
		CancelURL:  "https://shop.example/cart",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/cs_123", result.RedirectURL)
	assert.Equal(t, "cs_123", result.SessionID)

	// Line items are ordered by product id and priced live
	require.Len(t, gw.lastReq.LineItems, 2)
	assert.Equal(t, gateway.LineItem{Name: "Milk", UnitAmount: 1000, Quantity: 2}, gw.lastReq.LineItems[0])
	assert.Equal(t, gateway.LineItem{Name: "Bread", UnitAmount: 2000, Quantity: 1}, gw.lastReq.LineItems[1])
	assert.Equal(t, "https://shop.example/success", gw.lastReq.SuccessURL)
	assert.Equal(t, "https://shop.example/cart", gw.lastReq.CancelURL)

	// The metadata blob round-trips the cart and its owner
	meta, err := domain.DecodeMetadata(gw.lastReq.Metadata)
	require.NoError(t, err)
	assert.Equal(t, uint(7), meta.UserID)
	assert.Equal(t, map[uint]int{1: 2, 2: 1}, meta.Cart)

	// Initiation never touches the catalog or the cart
	assert.Equal(t, cartdomain.Cart{2: 1, 1: 2}, store.carts["s1"])
	product, _ := products.FindByID(context.Background(), 1)
	assert.Equal(t, 5, product.Stock)
}

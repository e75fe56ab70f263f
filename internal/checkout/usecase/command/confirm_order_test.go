package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/balasagoth/mi-supermercado/internal/cart/domain"
	orderdomain "github.com/balasagoth/mi-supermercado/internal/order/domain"
)

func TestConfirmOrder_NoPendingMarker(t *testing.T) {
	handler := NewConfirmOrderHandler(newFakeCartStore(), newFakeConfirmations(), newFakeOrderRepo())

	result, err := handler.Handle(context.Background(), ConfirmOrderCommand{SessionID: "s1", UserID: 1})
	require.NoError(t, err)
	assert.False(t, result.Confirmed)
	assert.Nil(t, result.Order)
}

func TestConfirmOrder_ClearsCartAndMarkerOnce(t *testing.T) {
	store := newFakeCartStore()
	store.carts["s1"] = cartdomain.Cart{1: 2}

	orders := newFakeOrderRepo()
	order := &orderdomain.Order{UserID: 7, Status: orderdomain.StatusPreparing, TotalCents: 4000, PaymentRef: "cs_123"}
	require.NoError(t, orders.CreateForPayment(context.Background(), order, nil))

	confirmations := newFakeConfirmations()
	confirmations.markers[7] = "cs_123"

	handler := NewConfirmOrderHandler(store, confirmations, orders)

	result, err := handler.Handle(context.Background(), ConfirmOrderCommand{SessionID: "s1", UserID: 7})
	require.NoError(t, err)
	assert.True(t, result.Confirmed)
	require.NotNil(t, result.Order)
	assert.Equal(t, "cs_123", result.Order.PaymentRef)

	assert.NotContains(t, store.carts, "s1")
	assert.NotContains(t, confirmations.markers, uint(7))

	// Second landing is a no-op
	result, err = handler.Handle(context.Background(), ConfirmOrderCommand{SessionID: "s1", UserID: 7})
	require.NoError(t, err)
	assert.False(t, result.Confirmed)
}

func TestConfirmOrder_OrphanMarkerIsDropped(t *testing.T) {
	confirmations := newFakeConfirmations()
	confirmations.markers[3] = "cs_ghost"
	handler := NewConfirmOrderHandler(newFakeCartStore(), confirmations, newFakeOrderRepo())

	result, err := handler.Handle(context.Background(), ConfirmOrderCommand{SessionID: "s1", UserID: 3})
	require.NoError(t, err)
	assert.False(t, result.Confirmed)
	assert.NotContains(t, confirmations.markers, uint(3))
}

func TestConfirmOrder_KeepsMarkerWhenCartClearFails(t *testing.T) {
	store := newFakeCartStore()
	store.clearErr = errBoom

	orders := newFakeOrderRepo()
	order := &orderdomain.Order{UserID: 5, PaymentRef: "cs_retry"}
	require.NoError(t, orders.CreateForPayment(context.Background(), order, nil))

	confirmations := newFakeConfirmations()
	confirmations.markers[5] = "cs_retry"

	handler := NewConfirmOrderHandler(store, confirmations, orders)

	_, err := handler.Handle(context.Background(), ConfirmOrderCommand{SessionID: "s1", UserID: 5})
	require.Error(t, err)
	assert.Equal(t, "cs_retry", confirmations.markers[5])
}

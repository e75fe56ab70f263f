package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balasagoth/mi-supermercado/internal/checkout/domain"
	orderdomain "github.com/balasagoth/mi-supermercado/internal/order/domain"
)

func completedEvent(t *testing.T, sessionID string, amount int64, userID uint, cart map[uint]int) domain.WebhookEvent {
	t.Helper()
	metadata, err := domain.EncodeMetadata(userID, cart)
	require.NoError(t, err)

	var event domain.WebhookEvent
	event.Type = domain.EventCheckoutCompleted
	event.Data.Object = domain.Session{
		ID:          sessionID,
		AmountTotal: amount,
		Metadata:    metadata,
	}
	return event
}

func TestProcessNotification_MaterializesOrder(t *testing.T) {
	orders := newFakeOrderRepo()
	confirmations := newFakeConfirmations()
	publisher := &fakePublisher{}
	handler := NewProcessNotificationHandler(orders, confirmations, publisher)

	event := completedEvent(t, "cs_test_123", 4000, 7, map[uint]int{2: 1, 1: 2})

	materialized, err := handler.Handle(context.Background(), ProcessNotificationCommand{Event: event})
	require.NoError(t, err)
	assert.True(t, materialized)

	order, err := orders.FindByPaymentRef("cs_test_123")
	require.NoError(t, err)
	assert.Equal(t, uint(7), order.UserID)
	assert.Equal(t, orderdomain.StatusPreparing, order.Status)
	assert.Equal(t, int64(4000), order.TotalCents)

	// Lines arrive sorted by product id with the cart quantities
	require.Len(t, orders.lastLines, 2)
	assert.Equal(t, orderdomain.NewLine{ProductID: 1, Quantity: 2}, orders.lastLines[0])
	assert.Equal(t, orderdomain.NewLine{ProductID: 2, Quantity: 1}, orders.lastLines[1])

	// Post-commit side effects: confirmation marker and order event
	assert.Equal(t, "cs_test_123", confirmations.markers[7])
	require.Len(t, publisher.events, 1)
	assert.Equal(t, order.ID, publisher.events[0].OrderID)
	assert.Equal(t, uint(7), publisher.events[0].UserID)
	assert.Equal(t, "cs_test_123", publisher.events[0].PaymentRef)
	assert.Equal(t, int64(4000), publisher.events[0].TotalCents)
}

func TestProcessNotification_IgnoresOtherEventTypes(t *testing.T) {
	orders := newFakeOrderRepo()
	handler := NewProcessNotificationHandler(orders, newFakeConfirmations(), nil)

	var event domain.WebhookEvent
	event.Type = "checkout.session.expired"

	materialized, err := handler.Handle(context.Background(), ProcessNotificationCommand{Event: event})
	require.NoError(t, err)
	assert.False(t, materialized)
	assert.Empty(t, orders.byRef)
}

func TestProcessNotification_RejectsMissingSessionID(t *testing.T) {
	handler := NewProcessNotificationHandler(newFakeOrderRepo(), newFakeConfirmations(), nil)

	var event domain.WebhookEvent
	event.Type = domain.EventCheckoutCompleted

	_, err := handler.Handle(context.Background(), ProcessNotificationCommand{Event: event})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestProcessNotification_RejectsBadMetadata(t *testing.T) {
	orders := newFakeOrderRepo()
	handler := NewProcessNotificationHandler(orders, newFakeConfirmations(), nil)

	var event domain.WebhookEvent
	event.Type = domain.EventCheckoutCompleted
	event.Data.Object = domain.Session{ID: "cs_bad", AmountTotal: 100, Metadata: "not-base64!"}

	_, err := handler.Handle(context.Background(), ProcessNotificationCommand{Event: event})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	assert.Empty(t, orders.byRef)
}

func TestProcessNotification_DuplicateDeliveryIsAcknowledged(t *testing.T) {
	orders := newFakeOrderRepo()
	confirmations := newFakeConfirmations()
	handler := NewProcessNotificationHandler(orders, confirmations, nil)

	event := completedEvent(t, "cs_dup", 1500, 3, map[uint]int{5: 1})

	materialized, err := handler.Handle(context.Background(), ProcessNotificationCommand{Event: event})
	require.NoError(t, err)
	assert.True(t, materialized)

	// Redelivery hits the pre-check and acknowledges without a second order
	materialized, err = handler.Handle(context.Background(), ProcessNotificationCommand{Event: event})
	require.NoError(t, err)
	assert.False(t, materialized)
	assert.Len(t, orders.byRef, 1)
}

func TestProcessNotification_ConcurrentDuplicateIsAcknowledged(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.createErr = orderdomain.ErrDuplicatePaymentRef
	confirmations := newFakeConfirmations()
	handler := NewProcessNotificationHandler(orders, confirmations, nil)

	event := completedEvent(t, "cs_race", 900, 4, map[uint]int{1: 1})

	materialized, err := handler.Handle(context.Background(), ProcessNotificationCommand{Event: event})
	require.NoError(t, err)
	assert.False(t, materialized)
	assert.Empty(t, confirmations.markers)
}

func TestProcessNotification_RepositoryFaultPropagates(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.createErr = errBoom
	handler := NewProcessNotificationHandler(orders, newFakeConfirmations(), nil)

	event := completedEvent(t, "cs_fault", 900, 4, map[uint]int{1: 1})

	_, err := handler.Handle(context.Background(), ProcessNotificationCommand{Event: event})
	assert.ErrorIs(t, err, errBoom)
}

func TestProcessNotification_InsufficientStockPropagates(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.createErr = orderdomain.ErrInsufficientStock
	handler := NewProcessNotificationHandler(orders, newFakeConfirmations(), nil)

	event := completedEvent(t, "cs_stock", 900, 4, map[uint]int{1: 3})

	_, err := handler.Handle(context.Background(), ProcessNotificationCommand{Event: event})
	assert.ErrorIs(t, err, orderdomain.ErrInsufficientStock)
}

func TestProcessNotification_MarkerFailureDoesNotFailAck(t *testing.T) {
	orders := newFakeOrderRepo()
	confirmations := newFakeConfirmations()
	confirmations.setErr = errBoom
	handler := NewProcessNotificationHandler(orders, confirmations, nil)

	event := completedEvent(t, "cs_marker", 500, 2, map[uint]int{9: 1})

	materialized, err := handler.Handle(context.Background(), ProcessNotificationCommand{Event: event})
	require.NoError(t, err)
	assert.True(t, materialized)
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/balasagoth/mi-supermercado/internal/cart/domain"
	"github.com/balasagoth/mi-supermercado/internal/checkout/domain"
	"github.com/balasagoth/mi-supermercado/internal/checkout/gateway"
	"github.com/balasagoth/mi-supermercado/internal/checkout/usecase/command"
	orderdomain "github.com/balasagoth/mi-supermercado/internal/order/domain"
)

const testWebhookSecret = "whsec_test"

type memoryOrderRepo struct {
	byRef  map[string]*orderdomain.Order
	nextID uint
}

func (r *memoryOrderRepo) CreateForPayment(ctx context.Context, order *orderdomain.Order, lines []orderdomain.NewLine) error {
	if _, ok := r.byRef[order.PaymentRef]; ok {
		return orderdomain.ErrDuplicatePaymentRef
	}
	r.nextID++
	order.ID = r.nextID
	r.byRef[order.PaymentRef] = order
	return nil
}

func (r *memoryOrderRepo) FindByID(id uint) (*orderdomain.Order, error) {
	return nil, orderdomain.ErrNotFound
}

func (r *memoryOrderRepo) FindByPaymentRef(ref string) (*orderdomain.Order, error) {
	if order, ok := r.byRef[ref]; ok {
		return order, nil
	}
	return nil, orderdomain.ErrNotFound
}

func (r *memoryOrderRepo) FindByUserID(userID uint, limit, offset int) ([]orderdomain.Order, error) {
	return nil, nil
}

func (r *memoryOrderRepo) FindLatestByUserID(userID uint) (*orderdomain.Order, error) {
	return nil, orderdomain.ErrNotFound
}

func (r *memoryOrderRepo) FindAll(limit, offset int) ([]orderdomain.Order, error) { return nil, nil }

func (r *memoryOrderRepo) UpdateStatus(id uint, status orderdomain.OrderStatus) error { return nil }

type memoryCartStore struct {
	carts   map[string]cartdomain.Cart
	markers map[uint]string
}

func (s *memoryCartStore) Get(ctx context.Context, sessionID string) (cartdomain.Cart, error) {
	if cart, ok := s.carts[sessionID]; ok {
		return cart, nil
	}
	return cartdomain.Cart{}, nil
}

func (s *memoryCartStore) Save(ctx context.Context, sessionID string, cart cartdomain.Cart) error {
	s.carts[sessionID] = cart
	return nil
}

func (s *memoryCartStore) Clear(ctx context.Context, sessionID string) error {
	delete(s.carts, sessionID)
	return nil
}

func (s *memoryCartStore) SetConfirmed(ctx context.Context, userID uint, paymentRef string) error {
	s.markers[userID] = paymentRef
	return nil
}

func (s *memoryCartStore) GetConfirmed(ctx context.Context, userID uint) (string, bool, error) {
	ref, ok := s.markers[userID]
	return ref, ok, nil
}

func (s *memoryCartStore) ClearConfirmed(ctx context.Context, userID uint) error {
	delete(s.markers, userID)
	return nil
}

func signedWebhookRequest(t *testing.T, event domain.WebhookEvent, secret string) *http.Request {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", bytes.NewReader(body))
	req.Header.Set(gateway.SignatureHeader, gateway.Sign(body, secret))
	return req
}

func completedEvent(t *testing.T, sessionID string, amount int64, userID uint, cart map[uint]int) domain.WebhookEvent {
	t.Helper()
	metadata, err := domain.EncodeMetadata(userID, cart)
	require.NoError(t, err)

	var event domain.WebhookEvent
	event.Type = domain.EventCheckoutCompleted
	event.Data.Object = domain.Session{ID: sessionID, AmountTotal: amount, Metadata: metadata}
	return event
}

// One handler for the whole test: the constructor registers Prometheus
// collectors on the default registry, which tolerates only one registration.
func TestHandleWebhook(t *testing.T) {
	orders := &memoryOrderRepo{byRef: make(map[string]*orderdomain.Order)}
	store := &memoryCartStore{carts: make(map[string]cartdomain.Cart), markers: make(map[uint]string)}

	handler := NewCheckoutHandler(
		nil,
		command.NewProcessNotificationHandler(orders, store, nil),
		command.NewConfirmOrderHandler(store, store, orders),
		testWebhookSecret,
		"https://shop.example/success",
		"https://shop.example/cart",
	)

	t.Run("rejects missing signature", func(t *testing.T) {
		body := []byte(`{"type":"checkout.session.completed"}`)
		req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		handler.HandleWebhook(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, orders.byRef)
	})

	t.Run("rejects forged signature", func(t *testing.T) {
		event := completedEvent(t, "cs_forged", 1000, 1, map[uint]int{1: 1})
		req := signedWebhookRequest(t, event, "wrong-secret")
		rec := httptest.NewRecorder()

		handler.HandleWebhook(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, orders.byRef)
	})

	t.Run("rejects unparseable body", func(t *testing.T) {
		body := []byte("{garbage")
		req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", bytes.NewReader(body))
		req.Header.Set(gateway.SignatureHeader, gateway.Sign(body, testWebhookSecret))
		rec := httptest.NewRecorder()

		handler.HandleWebhook(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("acknowledges ignored event types", func(t *testing.T) {
		var event domain.WebhookEvent
		event.Type = "checkout.session.expired"
		req := signedWebhookRequest(t, event, testWebhookSecret)
		rec := httptest.NewRecorder()

		handler.HandleWebhook(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, orders.byRef)
	})

	t.Run("rejects bad metadata permanently", func(t *testing.T) {
		var event domain.WebhookEvent
		event.Type = domain.EventCheckoutCompleted
		event.Data.Object = domain.Session{ID: "cs_badmeta", AmountTotal: 100, Metadata: "???"}
		req := signedWebhookRequest(t, event, testWebhookSecret)
		rec := httptest.NewRecorder()

		handler.HandleWebhook(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, orders.byRef)
	})

	t.Run("materializes completed payment", func(t *testing.T) {
		event := completedEvent(t, "cs_ok", 4000, 7, map[uint]int{1: 2, 2: 1})
		req := signedWebhookRequest(t, event, testWebhookSecret)
		rec := httptest.NewRecorder()

		handler.HandleWebhook(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		order, err := orders.FindByPaymentRef("cs_ok")
		require.NoError(t, err)
		assert.Equal(t, uint(7), order.UserID)
		assert.Equal(t, int64(4000), order.TotalCents)
		assert.Equal(t, "cs_ok", store.markers[7])
	})

	t.Run("duplicate delivery acknowledged without second order", func(t *testing.T) {
		event := completedEvent(t, "cs_ok", 4000, 7, map[uint]int{1: 2, 2: 1})
		for i := 0; i < 2; i++ {
			req := signedWebhookRequest(t, event, testWebhookSecret)
			rec := httptest.NewRecorder()
			handler.HandleWebhook(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code, fmt.Sprintf("delivery %d", i+1))
		}
		assert.Len(t, orders.byRef, 1)
	})
}

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	cartHttp "github.com/balasagoth/mi-supermercado/internal/cart/delivery/http"
	cartdomain "github.com/balasagoth/mi-supermercado/internal/cart/domain"
	catalogdomain "github.com/balasagoth/mi-supermercado/internal/catalog/domain"
	"github.com/balasagoth/mi-supermercado/internal/checkout/domain"
	"github.com/balasagoth/mi-supermercado/internal/checkout/gateway"
	"github.com/balasagoth/mi-supermercado/internal/checkout/usecase/command"
	userHttp "github.com/balasagoth/mi-supermercado/internal/user/delivery/http"
	"github.com/balasagoth/mi-supermercado/pkg/logger"
)

// maxWebhookBody bounds the raw notification body read into memory
const maxWebhookBody = 1 << 20

// CheckoutHandler handles checkout initiation, the gateway webhook and the
// order-success landing
type CheckoutHandler struct {
	initiateHandler *command.InitiateCheckoutHandler
	processHandler  *command.ProcessNotificationHandler
	confirmHandler  *command.ConfirmOrderHandler

	webhookSecret string
	successURL    string
	cancelURL     string

	webhookEvents *prometheus.CounterVec
	ordersPlaced  prometheus.Counter
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(
	initiateHandler *command.InitiateCheckoutHandler,
	processHandler *command.ProcessNotificationHandler,
	confirmHandler *command.ConfirmOrderHandler,
	webhookSecret, successURL, cancelURL string,
) *CheckoutHandler {
	webhookEvents := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_webhook_events_total",
			Help: "Total number of payment gateway notifications by outcome",
		},
		[]string{"outcome"},
	)
	ordersPlaced := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "store_orders_placed_total",
			Help: "Total number of orders materialized from payment notifications",
		},
	)
	prometheus.MustRegister(webhookEvents)
	prometheus.MustRegister(ordersPlaced)

	return &CheckoutHandler{
		initiateHandler: initiateHandler,
		processHandler:  processHandler,
		confirmHandler:  confirmHandler,
		webhookSecret:   webhookSecret,
		successURL:      successURL,
		cancelURL:       cancelURL,
		webhookEvents:   webhookEvents,
		ordersPlaced:    ordersPlaced,
	}
}

type response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// InitiateCheckout handles POST /api/checkout (authenticated)
func (h *CheckoutHandler) InitiateCheckout(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(userHttp.UserIDKey).(uint)
	if !ok {
		h.respondJSON(w, http.StatusUnauthorized, response{Success: false, Error: "User ID not found in context"})
		return
	}

	sessionID := cartHttp.SessionID(w, r)
	result, err := h.initiateHandler.Handle(r.Context(), command.InitiateCheckoutCommand{
		SessionID:  sessionID,
		UserID:     userID,
		SuccessURL: h.successURL,
		CancelURL:  h.cancelURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, cartdomain.ErrEmptyCart):
			h.respondJSON(w, http.StatusBadRequest, response{Success: false, Error: "Cart is empty"})
		case errors.Is(err, catalogdomain.ErrNotFound):
			h.respondJSON(w, http.StatusNotFound, response{Success: false, Error: "Product no longer available"})
		case errors.Is(err, domain.ErrGateway):
			logger.Logger.Error().Err(err).Msg("Checkout initiation failed at gateway")
			h.respondJSON(w, http.StatusBadGateway, response{Success: false, Error: "Payment gateway unavailable, please try again"})
		default:
			logger.Logger.Error().Err(err).Msg("Checkout initiation failed")
			h.respondJSON(w, http.StatusInternalServerError, response{Success: false, Error: "Checkout failed"})
		}
		return
	}

	h.respondJSON(w, http.StatusOK, response{Success: true, Data: result})
}

// HandleWebhook handles POST /webhooks/payment. The gateway keys its retry
// policy off the status code: 2xx stops retries, 4xx marks the delivery
// permanently rejected, 5xx schedules a retry.
func (h *CheckoutHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		h.webhookEvents.WithLabelValues("rejected").Inc()
		h.respondJSON(w, http.StatusBadRequest, response{Success: false, Error: "Unreadable payload"})
		return
	}

	signature := r.Header.Get(gateway.SignatureHeader)
	if !gateway.VerifySignature(body, signature, h.webhookSecret) {
		h.webhookEvents.WithLabelValues("rejected").Inc()
		logger.Logger.Warn().
			Str("remote_addr", r.RemoteAddr).
			Msg("Webhook signature verification failed")
		h.respondJSON(w, http.StatusBadRequest, response{Success: false, Error: "Invalid signature"})
		return
	}

	event, err := domain.ParseWebhookEvent(body)
	if err != nil {
		h.webhookEvents.WithLabelValues("rejected").Inc()
		logger.Logger.Warn().Err(err).Msg("Webhook payload rejected")
		h.respondJSON(w, http.StatusBadRequest, response{Success: false, Error: "Invalid payload"})
		return
	}

	materialized, err := h.processHandler.Handle(r.Context(), command.ProcessNotificationCommand{Event: *event})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPayload) {
			h.webhookEvents.WithLabelValues("rejected").Inc()
			logger.Logger.Warn().Err(err).Msg("Webhook payload rejected")
			h.respondJSON(w, http.StatusBadRequest, response{Success: false, Error: "Invalid payload"})
			return
		}
		// Server fault: the gateway retries and lands on the idempotency guard
		h.webhookEvents.WithLabelValues("failed").Inc()
		logger.Logger.Error().Err(err).Msg("Webhook materialization failed")
		h.respondJSON(w, http.StatusInternalServerError, response{Success: false, Error: "Materialization failed"})
		return
	}

	if materialized {
		h.ordersPlaced.Inc()
	}
	h.webhookEvents.WithLabelValues("accepted").Inc()
	h.respondJSON(w, http.StatusOK, response{Success: true, Message: "Notification processed"})
}

// ConfirmOrder handles GET /api/checkout/success (authenticated)
func (h *CheckoutHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(userHttp.UserIDKey).(uint)
	if !ok {
		h.respondJSON(w, http.StatusUnauthorized, response{Success: false, Error: "User ID not found in context"})
		return
	}

	sessionID := cartHttp.SessionID(w, r)
	result, err := h.confirmHandler.Handle(r.Context(), command.ConfirmOrderCommand{
		SessionID: sessionID,
		UserID:    userID,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Order confirmation failed")
		h.respondJSON(w, http.StatusInternalServerError, response{Success: false, Error: "Order confirmation failed"})
		return
	}

	h.respondJSON(w, http.StatusOK, response{Success: true, Data: result})
}

func (h *CheckoutHandler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/checkout", userHttp.AuthMiddleware(h.InitiateCheckout)).Methods("POST")
	router.HandleFunc("/api/checkout/success", userHttp.AuthMiddleware(h.ConfirmOrder)).Methods("GET")
	router.HandleFunc("/webhooks/payment", h.HandleWebhook).Methods("POST")
}

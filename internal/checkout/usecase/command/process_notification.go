package command

import (
	"context"
	"errors"
	"fmt"
	"sort"

	cartdomain "github.com/balasagoth/mi-supermercado/internal/cart/domain"
	"github.com/balasagoth/mi-supermercado/internal/checkout/domain"
	orderdomain "github.com/balasagoth/mi-supermercado/internal/order/domain"
	"github.com/balasagoth/mi-supermercado/kafka"
	"github.com/balasagoth/mi-supermercado/pkg/logger"
)

// ProcessNotificationCommand carries one verified gateway notification
type ProcessNotificationCommand struct {
	Event domain.WebhookEvent
}

// OrderEventPublisher is the slice of the Kafka publisher this command needs
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
}

// ProcessNotificationHandler materializes orders from completed-payment
// notifications. It must stay safe under concurrent and duplicate delivery:
// the unique index on Order.PaymentRef is the safety net, the FindByPaymentRef
// pre-check only short-circuits the common retry.
type ProcessNotificationHandler struct {
	orders        orderdomain.OrderRepository
	confirmations cartdomain.ConfirmationStore
	publisher     OrderEventPublisher
}

// NewProcessNotificationHandler creates a new process notification handler.
// publisher may be nil when Kafka is not configured.
func NewProcessNotificationHandler(
	orders orderdomain.OrderRepository,
	confirmations cartdomain.ConfirmationStore,
	publisher OrderEventPublisher,
) *ProcessNotificationHandler {
	return &ProcessNotificationHandler{
		orders:        orders,
		confirmations: confirmations,
		publisher:     publisher,
	}
}

// Handle executes the reconciliation state machine for one notification.
// A nil error tells the gateway to stop retrying; any non-nil error other
// than ErrInvalidPayload maps to a server fault so the gateway retries,
// which is safe because retries land on the idempotency guard. The bool
// reports whether this invocation materialized a new order.
func (h *ProcessNotificationHandler) Handle(ctx context.Context, cmd ProcessNotificationCommand) (bool, error) {
	event := cmd.Event

	// Filter: only completed payments materialize
	if event.Type != domain.EventCheckoutCompleted {
		logger.Logger.Debug().
			Str("event_type", event.Type).
			Msg("Ignoring gateway event")
		return false, nil
	}

	session := event.Data.Object
	if session.ID == "" {
		return false, fmt.Errorf("%w: missing session id", domain.ErrInvalidPayload)
	}

	// Idempotency pre-check for the common at-least-once retry
	if _, err := h.orders.FindByPaymentRef(session.ID); err == nil {
		logger.Logger.Info().
			Str("payment_ref", session.ID).
			Msg("Notification already materialized, acknowledging")
		return false, nil
	} else if !errors.Is(err, orderdomain.ErrNotFound) {
		return false, err
	}

	meta, err := domain.DecodeMetadata(session.Metadata)
	if err != nil {
		return false, err
	}

	ids := make([]uint, 0, len(meta.Cart))
	for id := range meta.Cart {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	lines := make([]orderdomain.NewLine, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, orderdomain.NewLine{ProductID: id, Quantity: meta.Cart[id]})
	}

	order := &orderdomain.Order{
		UserID:     meta.UserID,
		Status:     orderdomain.StatusPreparing,
		TotalCents: session.AmountTotal,
		PaymentRef: session.ID,
	}

	if err := h.orders.CreateForPayment(ctx, order, lines); err != nil {
		// A concurrent delivery won the unique-index race; the order exists,
		// so this invocation acknowledges too
		if errors.Is(err, orderdomain.ErrDuplicatePaymentRef) {
			logger.Logger.Info().
				Str("payment_ref", session.ID).
				Msg("Concurrent notification already materialized, acknowledging")
			return false, nil
		}
		return false, err
	}

	logger.Logger.Info().
		Uint("order_id", order.ID).
		Uint("user_id", meta.UserID).
		Str("payment_ref", session.ID).
		Int64("total_cents", order.TotalCents).
		Msg("Order materialized from payment notification")

	// Post-commit side effects are fire-and-forget; the order is already
	// durable and must be acknowledged regardless
	if err := h.confirmations.SetConfirmed(ctx, meta.UserID, session.ID); err != nil {
		logger.Logger.Warn().
			Err(err).
			Uint("user_id", meta.UserID).
			Msg("Failed to set confirmation marker; cart clears on TTL instead")
	}

	if h.publisher != nil {
		if err := h.publisher.PublishOrderPlaced(ctx, kafka.OrderPlacedEvent{
			OrderID:    order.ID,
			UserID:     meta.UserID,
			PaymentRef: session.ID,
			TotalCents: order.TotalCents,
		}); err != nil {
			logger.Logger.Error().
				Err(err).
				Uint("order_id", order.ID).
				Msg("Failed to publish order placed event")
		}
	}

	return true, nil
}

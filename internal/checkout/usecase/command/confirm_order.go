package command

import (
	"context"
	"errors"

	cartdomain "github.com/balasagoth/mi-supermercado/internal/cart/domain"
	orderdomain "github.com/balasagoth/mi-supermercado/internal/order/domain"
	"github.com/balasagoth/mi-supermercado/pkg/logger"
)

// ConfirmOrderCommand completes the deferred half of the webhook handshake:
// on the user's next authenticated request after payment, clear the session
// cart and hand back the materialized order.
type ConfirmOrderCommand struct {
	SessionID string
	UserID    uint
}

// ConfirmOrderResult reports whether a fresh confirmation was consumed
type ConfirmOrderResult struct {
	Confirmed bool               `json:"confirmed"`
	Order     *orderdomain.Order `json:"order,omitempty"`
}

// ConfirmOrderHandler handles the order-success landing request
type ConfirmOrderHandler struct {
	store         cartdomain.Store
	confirmations cartdomain.ConfirmationStore
	orders        orderdomain.OrderRepository
}

// NewConfirmOrderHandler creates a new confirm order handler
func NewConfirmOrderHandler(
	store cartdomain.Store,
	confirmations cartdomain.ConfirmationStore,
	orders orderdomain.OrderRepository,
) *ConfirmOrderHandler {
	return &ConfirmOrderHandler{store: store, confirmations: confirmations, orders: orders}
}

// Handle executes the confirm order command. Without a pending marker this is
// a no-op; with one, the cart is cleared and the marker removed so the
// handshake fires exactly once per payment.
func (h *ConfirmOrderHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*ConfirmOrderResult, error) {
	paymentRef, pending, err := h.confirmations.GetConfirmed(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if !pending {
		return &ConfirmOrderResult{Confirmed: false}, nil
	}

	order, err := h.orders.FindByPaymentRef(paymentRef)
	if err != nil {
		if errors.Is(err, orderdomain.ErrNotFound) {
			// Marker without an order should not happen; drop it
			logger.Logger.Warn().
				Uint("user_id", cmd.UserID).
				Str("payment_ref", paymentRef).
				Msg("Confirmation marker without matching order")
			_ = h.confirmations.ClearConfirmed(ctx, cmd.UserID)
			return &ConfirmOrderResult{Confirmed: false}, nil
		}
		return nil, err
	}

	if err := h.store.Clear(ctx, cmd.SessionID); err != nil {
		// Keep the marker so the next request retries the clear
		return nil, err
	}
	if err := h.confirmations.ClearConfirmed(ctx, cmd.UserID); err != nil {
		logger.Logger.Warn().
			Err(err).
			Uint("user_id", cmd.UserID).
			Msg("Failed to clear confirmation marker")
	}

	return &ConfirmOrderResult{Confirmed: true, Order: order}, nil
}

package mailer

import (
	"context"

	"github.com/balasagoth/mi-supermercado/pkg/logger"
)

// OrderConfirmation describes the data rendered into a confirmation mail
type OrderConfirmation struct {
	OrderID    uint
	UserID     uint
	TotalCents int64
	Recipient  string
}

// Sender delivers order-confirmation mail. Fire-and-forget: failures are
// logged, never propagated into the order flow.
type Sender interface {
	SendOrderConfirmation(ctx context.Context, msg OrderConfirmation) error
}

// LogSender is a stub sender that only logs. SMTP delivery is an external
// collaborator; swap in a real implementation behind the same interface.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) SendOrderConfirmation(ctx context.Context, msg OrderConfirmation) error {
	logger.Info(ctx).
		Uint("order_id", msg.OrderID).
		Uint("user_id", msg.UserID).
		Int64("total_cents", msg.TotalCents).
		Str("recipient", msg.Recipient).
		Msg("Order confirmation mail (stub)")
	return nil
}

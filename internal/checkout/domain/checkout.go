package domain

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// EventCheckoutCompleted is the only gateway event kind that materializes an
// order; every other kind is acknowledged and ignored.
const EventCheckoutCompleted = "checkout.session.completed"

var (
	// ErrInvalidPayload is returned when a notification body cannot be parsed
	ErrInvalidPayload = errors.New("invalid notification payload")
	// ErrInvalidSignature is returned when the notification signature does not
	// match the shared webhook secret
	ErrInvalidSignature = errors.New("invalid notification signature")
	// ErrGateway is returned when the payment gateway cannot be reached or
	// rejects the session request
	ErrGateway = errors.New("payment gateway error")
)

// Metadata is the state carried from checkout initiation to the asynchronous
// notification. The notification arrives with no session context, so this
// blob is the only channel holding the cart and its owner.
type Metadata struct {
	UserID uint         `json:"user_id"`
	Cart   map[uint]int `json:"cart"`
}

// EncodeMetadata packs the user and cart into an opaque blob for the gateway
func EncodeMetadata(userID uint, cart map[uint]int) (string, error) {
	raw, err := json.Marshal(Metadata{UserID: userID, Cart: cart})
	if err != nil {
		return "", fmt.Errorf("failed to encode metadata: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeMetadata unpacks a blob produced by EncodeMetadata
func DecodeMetadata(blob string) (*Metadata, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: bad metadata encoding", ErrInvalidPayload)
	}
	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("%w: bad metadata content", ErrInvalidPayload)
	}
	if meta.UserID == 0 || len(meta.Cart) == 0 {
		return nil, fmt.Errorf("%w: empty metadata", ErrInvalidPayload)
	}
	return &meta, nil
}

// Session is the gateway's view of a completed (or pending) payment session
type Session struct {
	ID          string `json:"id"`
	AmountTotal int64  `json:"amount_total"`
	Metadata    string `json:"metadata"`
}

// WebhookEvent is the signed notification delivered by the gateway
type WebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object Session `json:"object"`
	} `json:"data"`
}

// ParseWebhookEvent decodes a raw notification body
func ParseWebhookEvent(body []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if event.Type == "" {
		return nil, fmt.Errorf("%w: missing event type", ErrInvalidPayload)
	}
	return &event, nil
}

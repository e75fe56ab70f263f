package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/balasagoth/mi-supermercado/internal/checkout/domain"
	"github.com/balasagoth/mi-supermercado/pkg/logger"
)

// LineItem describes one cart entry for the gateway, priced in minor units
type LineItem struct {
	Name       string `json:"name"`
	UnitAmount int64  `json:"unit_amount"`
	Quantity   int    `json:"quantity"`
	ImageURL   string `json:"image_url,omitempty"`
}

// CreateSessionRequest is the payment session request sent to the gateway
type CreateSessionRequest struct {
	LineItems  []LineItem `json:"line_items"`
	SuccessURL string     `json:"success_url"`
	CancelURL  string     `json:"cancel_url"`
	Metadata   string     `json:"metadata"`
}

// CreateSessionResponse carries the redirect URL and the session id that
// later becomes the order's payment reference
type CreateSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Client calls the external payment gateway over HTTP
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new payment gateway client
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// CreateSession creates a payment session. The call is the single external
// round-trip of checkout initiation; any failure surfaces as ErrGateway and
// leaves no local state behind.
func (c *Client) CreateSession(ctx context.Context, req CreateSessionRequest) (*CreateSessionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build session request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Payment gateway unreachable")
		return nil, fmt.Errorf("%w: %v", domain.ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(raw)).
			Msg("Payment gateway rejected session request")
		return nil, fmt.Errorf("%w: status %d", domain.ErrGateway, resp.StatusCode)
	}

	var session CreateSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("%w: bad session response: %v", domain.ErrGateway, err)
	}
	if session.ID == "" || session.URL == "" {
		return nil, fmt.Errorf("%w: incomplete session response", domain.ErrGateway)
	}

	return &session, nil
}

package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Gateway defines the interface for the external payment gateway.
// The gateway takes an order id and amount and returns a checkout
// redirect URL for the customer.
type Gateway interface {
	CreateCheckout(ctx context.Context, orderID string, grossAmount int64, customerEmail string) (string, error)
}

// Config holds configuration for the gateway HTTP client
type Config struct {
	BaseURL    string        // Snap transactions endpoint
	AuthString string        // Base64-encoded server key for Basic auth
	FinishURL  string        // Where the customer lands after checkout
	Timeout    time.Duration // Per-request timeout
}

// Client implements Gateway against the Midtrans Snap HTTP API
type Client struct {
	config Config
	http   *http.Client
	logger zerolog.Logger
}

// NewClient creates a new gateway client
func NewClient(config Config, logger zerolog.Logger) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		config: config,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type checkoutRequest struct {
	TransactionDetails struct {
		OrderID     string `json:"order_id"`
		GrossAmount int64  `json:"gross_amount"`
	} `json:"transaction_details"`
	CreditCard struct {
		Secure bool `json:"secure"`
	} `json:"credit_card"`
	CustomerDetails struct {
		Email string `json:"email"`
	} `json:"customer_details"`
	Callbacks struct {
		Finish string `json:"finish"`
	} `json:"callbacks"`
}

type checkoutResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// CreateCheckout requests a checkout session for the given order and
// returns the redirect URL the customer should be sent to.
func (c *Client) CreateCheckout(ctx context.Context, orderID string, grossAmount int64, customerEmail string) (string, error) {
	var payload checkoutRequest
	payload.TransactionDetails.OrderID = orderID
	payload.TransactionDetails.GrossAmount = grossAmount
	payload.CreditCard.Secure = true
	payload.CustomerDetails.Email = customerEmail
	payload.Callbacks.Finish = c.config.FinishURL

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode checkout request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.config.AuthString)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("orderId", orderID).Msg("Payment gateway request failed")
		return "", fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error().Int("status", resp.StatusCode).Str("orderId", orderID).Bytes("body", raw).Msg("Payment gateway returned error status")
		return "", fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var result checkoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode gateway response: %w", err)
	}

	if result.RedirectURL == "" {
		return "", fmt.Errorf("gateway response contained no redirect URL")
	}

	c.logger.Info().Str("orderId", orderID).Msg("Checkout session created")
	return result.RedirectURL, nil
}

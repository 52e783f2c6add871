package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Circulx/Fathom-Legal-sub001/config"
	"github.com/Circulx/Fathom-Legal-sub001/errs"
)

// Order is the gateway-side checkout session, distinct from a local order.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Payment is the gateway's record of a captured (or attempted) payment.
type Payment struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"` // created, authorized, captured, refunded, failed
	Method   string `json:"method"`
	Email    string `json:"email"`
	Captured bool   `json:"captured"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	keyID      string
	keySecret  string
}

func NewClient(cfg config.Razorpay) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   cfg.BaseURL,
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
	}
}

// Configured reports whether gateway credentials are present.
func (c *Client) Configured() bool {
	return c.keyID != "" && c.keySecret != ""
}

// KeyID is the public key handed to the browser checkout widget.
func (c *Client) KeyID() string { return c.keyID }

// KeySecret signs and verifies callback signatures.
func (c *Client) KeySecret() string { return c.keySecret }

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if !c.Configured() {
		return errs.Configuration("razorpay credentials not configured", nil)
	}

	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error struct {
				Code        string `json:"code"`
				Description string `json:"description"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("razorpay %s %s: status %d: %s", method, path, resp.StatusCode, apiErr.Error.Description)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// CreateOrder opens a gateway order for the given amount in paise.
func (c *Client) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*Order, error) {
	body := map[string]any{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	var order Order
	if err := c.do(ctx, http.MethodPost, "/v1/orders", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// FetchPayment looks up a payment to re-confirm capture status after a
// signature match.
func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*Payment, error) {
	var payment Payment
	if err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/liberiadate/liberiadate/internal/pkg/env"
)

const defaultStripeAPIBaseURL = "https://api.stripe.com"

// ErrNotConfigured is returned when no Stripe secret key is set. Controllers
// map it to a 500 telling the operator to configure STRIPE_SECRET_KEY.
var ErrNotConfigured = errors.New("stripe is not configured")

// Client talks to the Stripe Checkout REST API. It only covers the two calls
// the contact-unlock flow needs: creating a hosted checkout session and
// retrieving it for payment verification.
type Client struct {
	SecretKey  string
	APIBaseURL string

	HTTPClient *http.Client
}

// CheckoutSession is the subset of Stripe's checkout.session object the
// service reads.
type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	PaymentStatus string            `json:"payment_status"`
	Metadata      map[string]string `json:"metadata"`
}

// PaidFor reports whether the session was paid AND is tagged for the given
// profile. The metadata match stops a paid session for one profile being
// replayed to unlock another.
func (s *CheckoutSession) PaidFor(profileID string) bool {
	return s.PaymentStatus == "paid" && s.Metadata["profile_id"] == profileID
}

// CheckoutParams describes one contact-unlock purchase.
type CheckoutParams struct {
	ProfileID   string
	AmountCents int64
	Currency    string
	ProductName string
	Description string
	SuccessURL  string
	CancelURL   string
}

func NewClientFromEnv() *Client {
	timeout := 15 * time.Second
	if v, err := strconv.Atoi(env.GetEnv("STRIPE_TIMEOUT_SECONDS", "")); err == nil && v > 0 {
		timeout = time.Duration(v) * time.Second
	}

	return &Client{
		SecretKey:  strings.TrimSpace(env.GetEnv("STRIPE_SECRET_KEY", "")),
		APIBaseURL: strings.TrimRight(env.GetEnv("STRIPE_API_BASE_URL", defaultStripeAPIBaseURL), "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Configured reports whether a secret key is present.
func (c *Client) Configured() bool {
	return strings.TrimSpace(c.SecretKey) != ""
}

// CreateCheckoutSession asks Stripe for a hosted checkout session scoped to
// one profile unlock and returns it with the redirect URL populated.
func (c *Client) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(p.ProfileID) == "" {
		return nil, errors.New("profile id is required")
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", p.Currency)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(p.AmountCents, 10))
	form.Set("line_items[0][price_data][product_data][name]", p.ProductName)
	form.Set("line_items[0][price_data][product_data][description]", p.Description)
	form.Set("metadata[profile_id]", p.ProfileID)
	form.Set("success_url", p.SuccessURL)
	form.Set("cancel_url", p.CancelURL)

	body, err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", form)
	if err != nil {
		return nil, err
	}

	var out CheckoutSession
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.URL) == "" {
		return nil, errors.New("stripe returned a checkout session without a url")
	}
	return &out, nil
}

// GetCheckoutSession retrieves a checkout session by id.
func (c *Client) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return nil, errors.New("session id is required")
	}

	body, err := c.do(ctx, http.MethodGet, "/v1/checkout/sessions/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var out CheckoutSession
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values) ([]byte, error) {
	var reqBody io.Reader
	if form != nil {
		reqBody = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.APIBaseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("Accept", "application/json")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("stripe request failed: status=%d body=%s", resp.StatusCode, string(body))
	}
	return body, nil
}

package httpgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shopify-sms-notifier/internal/domain"
)

// Config carries the gateway endpoint, account credentials and the fixed
// sender identity attached to every outbound message.
type Config struct {
	URL      string
	Username string
	Password string
	Sender   string
	Language string
	Timeout  time.Duration
}

// Client implements ports.SMSProvider against the vendor's HTTP gateway.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a Client. Every upstream call is bounded by cfg.Timeout so
// a stalled gateway cannot hang the request.
func New(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type sendRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Text      string `json:"text"`
	Language  string `json:"language"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	MessageID string `json:"msg_id"`
}

type sendResponse struct {
	Status string `json:"status"`
}

// Send posts the notification to the gateway. The notification's ID is
// submitted as the per-message identifier; "Success" is the only passing
// status. A failing response is returned with the raw body attached so
// operators can diagnose without replaying the request.
func (c *Client) Send(ctx context.Context, n domain.Notification) (domain.DispatchResult, error) {
	payload := sendRequest{
		Username:  c.cfg.Username,
		Password:  c.cfg.Password,
		Text:      n.Body,
		Language:  c.cfg.Language,
		Sender:    c.cfg.Sender,
		Receiver:  n.Phone.String(),
		MessageID: n.ID.String(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.DispatchResult{}, &domain.UpstreamError{Op: "gateway send", Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return domain.DispatchResult{}, &domain.UpstreamError{Op: "gateway send", Err: fmt.Errorf("new request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.DispatchResult{}, &domain.UpstreamError{Op: "gateway send", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.DispatchResult{}, &domain.UpstreamError{Op: "gateway send", Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return domain.DispatchResult{}, &domain.UpstreamError{Op: "gateway send", Err: fmt.Errorf("gateway returned %d: %s", resp.StatusCode, raw)}
	}

	var sr sendResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return domain.DispatchResult{}, &domain.UpstreamError{Op: "gateway send", Err: fmt.Errorf("decode response %q: %w", raw, err)}
	}

	if sr.Status != "Success" {
		return domain.DispatchResult{}, &domain.UpstreamError{Op: "gateway send", Err: fmt.Errorf("gateway status %q: %s", sr.Status, raw)}
	}

	return domain.DispatchResult{MessageID: n.ID.String()}, nil
}

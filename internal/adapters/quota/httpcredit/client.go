package httpcredit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"shopify-sms-notifier/internal/domain"
)

// exhaustedSentinel is the documented code the credit service returns in
// place of a balance when the account is used up.
const exhaustedSentinel = -5

// Client implements ports.QuotaService by querying the upstream credit
// service on every call. The authority for quota lives entirely upstream:
// two concurrent requests can both observe a positive balance and both
// send, because there is no reservation step in the vendor's API.
type Client struct {
	url        string
	username   string
	password   string
	httpClient *http.Client
}

func New(url, username, password string, timeout time.Duration) *Client {
	return &Client{
		url:      url,
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type balanceRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Remaining posts the service credentials and parses the numeric balance
// from the response body. The exhaustion sentinel becomes
// domain.ErrQuotaExhausted; any other non-numeric body is an upstream
// failure.
func (c *Client) Remaining(ctx context.Context) (int, error) {
	body, err := json.Marshal(balanceRequest{Username: c.username, Password: c.password})
	if err != nil {
		return 0, &domain.UpstreamError{Op: "query balance", Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return 0, &domain.UpstreamError{Op: "query balance", Err: fmt.Errorf("new request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &domain.UpstreamError{Op: "query balance", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, &domain.UpstreamError{Op: "query balance", Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return 0, &domain.UpstreamError{Op: "query balance", Err: fmt.Errorf("credit service returned %d: %s", resp.StatusCode, raw)}
	}

	balance := strings.TrimSpace(string(raw))
	n, err := strconv.Atoi(balance)
	if err != nil {
		return 0, &domain.UpstreamError{Op: "query balance", Err: fmt.Errorf("non-numeric balance %q", balance)}
	}

	if n == exhaustedSentinel {
		return 0, domain.ErrQuotaExhausted
	}

	return n, nil
}

// Record is a no-op: the credit service decrements the balance itself
// when the gateway accepts a message.
func (c *Client) Record(ctx context.Context) {}

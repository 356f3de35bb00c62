package httpcredit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopify-sms-notifier/internal/domain"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("credit service called with %s", r.Method)
		}

		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("decode credentials: %v", err)
		}
		if creds.Username != "acct" || creds.Password != "pw" {
			t.Errorf("wrong credentials: %+v", creds)
		}

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRemainingParsesBalance(t *testing.T) {
	srv := newServer(t, http.StatusOK, " 7\n")
	c := New(srv.URL, "acct", "pw", 5*time.Second)

	n, err := c.Remaining(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 7 {
		t.Fatalf("got %d, want 7", n)
	}
}

func TestRemainingExhaustionSentinel(t *testing.T) {
	srv := newServer(t, http.StatusOK, "-5")
	c := New(srv.URL, "acct", "pw", 5*time.Second)

	_, err := c.Remaining(context.Background())
	if !errors.Is(err, domain.ErrQuotaExhausted) {
		t.Fatalf("got %v, want ErrQuotaExhausted", err)
	}
}

func TestRemainingNonNumericBody(t *testing.T) {
	srv := newServer(t, http.StatusOK, "service unavailable")
	c := New(srv.URL, "acct", "pw", 5*time.Second)

	_, err := c.Remaining(context.Background())
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("got %v, want UpstreamError", err)
	}
}

func TestRemainingHTTPError(t *testing.T) {
	srv := newServer(t, http.StatusBadGateway, "oops")
	c := New(srv.URL, "acct", "pw", 5*time.Second)

	_, err := c.Remaining(context.Background())
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("got %v, want UpstreamError", err)
	}
}

func TestRemainingUnreachableService(t *testing.T) {
	c := New("http://127.0.0.1:1", "acct", "pw", time.Second)

	_, err := c.Remaining(context.Background())
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("got %v, want UpstreamError", err)
	}
}

// Package remote is the HTTP client for the job-board backend. It owns
// transport concerns only: bearer auth, rate limiting, timeouts, and
// decoding the backend's slightly inconsistent JSON envelopes. Business
// guards (roles, applied-state, pending-only transitions) live with the
// controllers that call it.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	RatePerSec float64
	Burst      int

	// Token supplies the current bearer token, empty when logged out.
	// Injected so the client never reaches into session storage itself.
	Token func() string
}

type Client struct {
	base    string
	hc      *http.Client
	limiter *hostLimiter
	token   func() string
}

func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	token := opts.Token
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		base:    strings.TrimRight(opts.BaseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		limiter: newHostLimiter(opts.RatePerSec, opts.Burst),
		token:   token,
	}
}

// do issues one request and hands back the raw body for 2xx responses.
// Non-2xx becomes *APIError with the server's message (or a per-status
// fallback phrase); transport failures and timeouts become ErrUnreachable.
func (c *Client) do(ctx context.Context, method, path string, payload any, authed bool) ([]byte, error) {
	u := c.base + path
	if err := c.limiter.waitURL(ctx, u); err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", "JobDesk/1.0 (+local)")
	if authed {
		if t := c.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	res, err := c.hc.Do(req)
	if err != nil {
		// Covers DNS failures, refused connections and client timeouts.
		return nil, unreachablef("%s %s", method, path)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return nil, unreachablef("read response %s %s", method, path)
	}

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return b, nil
	}

	msg := errorMessage(b)
	if msg == "" {
		msg = fallbackMessage(res.StatusCode)
	}
	return nil, &APIError{Status: res.StatusCode, Message: msg}
}

// get decodes a {"data": ...} envelope into out. A body that is not the
// expected shape is fatal for the call; we never partially render it.
func (c *Client) getData(ctx context.Context, path string, authed bool, out any) error {
	b, err := c.do(ctx, http.MethodGet, path, nil, authed)
	if err != nil {
		return err
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return fmt.Errorf("unexpected response shape for %s: %w", path, err)
	}
	raw := env.Data
	if len(raw) == 0 {
		// some endpoints skip the envelope entirely
		raw = b
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unexpected response shape for %s: %w", path, err)
	}
	return nil
}

// message extracts the confirmation text of a mutating call.
func message(body []byte) string {
	var env struct {
		Message string `json:"message"`
		Data    struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	_ = json.Unmarshal(body, &env)
	if env.Message != "" {
		return env.Message
	}
	return env.Data.Message
}

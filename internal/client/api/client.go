// Package api implements the HTTP client for the university-platform
// backend. It owns request authentication, the global 401 handling, and the
// normalization of loosely-shaped responses into the models package types.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/abylaikhan/uniadvisor/internal/logging"
)

// TokenSource provides and stores the bearer token pair. The session store
// satisfies this interface; tests can provide a lightweight stub.
type TokenSource interface {
	// AccessToken returns the stored access token, or "" when logged out.
	AccessToken(ctx context.Context) (string, error)
	// SetTokens stores a new token pair.
	SetTokens(ctx context.Context, access, refresh string) error
	// Clear wipes the stored pair.
	Clear(ctx context.Context) error
}

// Client is the platform API client. All methods attach a bearer header when
// a token exists and funnel non-2xx responses through the same error path:
// a 401 wipes the stored tokens and surfaces ErrUnauthorized; other statuses
// surface an *Error carrying the server detail message. Network errors
// propagate unchanged. Nothing is retried.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewClient constructs a Client for the backend at baseURL.
func NewClient(baseURL string, tokens TokenSource, log logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		log:     log,
	}
}

// IsAuthenticated reports whether an access token is currently stored.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	token, err := c.tokens.AccessToken(ctx)
	return err == nil && token != ""
}

// Logout clears the stored token pair.
func (c *Client) Logout(ctx context.Context) error {
	return c.tokens.Clear(ctx)
}

// postJSON issues a POST with a JSON body and decodes the response into out
// (which may be nil).
func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// getJSON issues a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// do sends req with the bearer header attached and applies the uniform
// response handling. On 401 the stored tokens are wiped before the error is
// returned; callers cannot suppress the wipe.
func (c *Client) do(req *http.Request, out any) error {
	ctx := req.Context()

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("reading access token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.tokens.Clear(ctx); err != nil {
			c.log.Error(ctx, "clearing tokens after 401", "error", err)
		}
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrUnauthorized)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{Status: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(data, &detail); err == nil {
			apiErr.Detail = detail.Detail
		}
		c.log.Warn(ctx, "request failed", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

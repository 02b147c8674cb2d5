// Package upstream is the shared client for the clinic backend REST API.
// Every screen talks to the backend through it: it attaches the signed-in
// user's bearer token, tags requests for tracing, maps authorization failures
// to ErrUnauthorized and extracts user-facing messages from error bodies.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrUnauthorized reports that the upstream rejected the bearer token. The
// central error handler reacts by clearing the session and pointing the
// client at the sign-in screen; individual screens never handle it.
var ErrUnauthorized = errors.New("upstream: unauthorized")

// APIError is a non-2xx upstream response, surfaced unchanged so the screen
// that triggered it can show the message in a banner. A 401 on an authorized
// call becomes ErrUnauthorized instead.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream: status %d: %s", e.Status, e.Message)
}

// FallbackMessage is shown when the upstream error body carries no usable
// message at all.
const FallbackMessage = "Error inesperado"

type tokenKey struct{}

// WithToken stores the bearer token for outgoing upstream calls in ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the bearer token previously stored with WithToken.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Client talks to the upstream clinic backend. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient builds a client rooted at <baseURL>/api.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Get issues a GET and decodes the response into out (ignored when nil).
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token := TokenFromContext(ctx)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request: %w", err)
	}
	defer res.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", res.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("upstream call")

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read upstream response: %w", err)
	}

	// A 401 means an expired session only when a token was actually sent.
	// Unauthenticated calls, the login itself among them, keep their status
	// and message like any other upstream error.
	if res.StatusCode == http.StatusUnauthorized && token != "" {
		return ErrUnauthorized
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &APIError{Status: res.StatusCode, Message: extractMessage(data)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode upstream response: %w", err)
	}
	return nil
}

// extractMessage pulls a user-facing message out of an upstream error body:
// the message field, else the serialized errors object, else FallbackMessage.
func extractMessage(data []byte) string {
	var body struct {
		Message string          `json:"message"`
		Errors  json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if raw := string(body.Errors); raw != "" && raw != "null" {
			return raw
		}
	}
	return FallbackMessage
}

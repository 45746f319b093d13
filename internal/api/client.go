// Package api is the single outbound HTTP primitive of the admin client.
// Every store operation goes through Client.Request; nothing else talks
// to the backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/turf-admin/internal/observability"
	"github.com/example/turf-admin/internal/token"
)

// Error is a request failure carrying a message fit for direct display.
// Status is zero for transport-level failures.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

const transportErrMsg = "Something went wrong. Please check your connection and try again."

// Client issues JSON requests against the admin REST API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Tokens  token.Store
	Logger  *slog.Logger
}

func NewClient(baseURL string, tokens token.Store, logger *slog.Logger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
		Tokens:  tokens,
		Logger:  logger,
	}
}

// Request sends method+path with an optional JSON body and returns the
// raw response body. The persisted bearer token is attached when present;
// a missing token is not an error at this layer. Non-2xx responses and
// transport failures come back as *Error with a displayable message.
func (c *Client) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Message: "Invalid request payload"}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, &Error{Message: transportErrMsg}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok, err := c.Tokens.Load(ctx); err == nil && tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	} else if err != nil && !errors.Is(err, token.ErrNotFound) {
		// Proceed unauthenticated; the server rejects if auth was required.
		c.Logger.Warn("token load failed", "error", err)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.observe(method, path, 0, start)
		c.Logger.Warn("api request failed", "method", method, "path", path, "error", err)
		return nil, &Error{Message: transportErrMsg}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	c.observe(method, path, resp.StatusCode, start)
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: transportErrMsg}
	}

	c.Logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", req.Header.Get("X-Request-ID"),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Status: resp.StatusCode, Message: errorMessage(raw, resp.StatusCode)}
	}
	return raw, nil
}

func (c *Client) observe(method, path string, status int, start time.Time) {
	code := strconv.Itoa(status)
	observability.APIRequestsTotal.WithLabelValues(method, path, code).Inc()
	observability.APIRequestDuration.WithLabelValues(method, path, code).Observe(time.Since(start).Seconds())
}

// errorMessage prefers the server-supplied {message} field, falling back
// to generic transport text.
func errorMessage(raw []byte, status int) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return "Request failed (" + strconv.Itoa(status) + ")"
}

// Package backend implements the remote data accessors: one stateless
// module per backend resource, each mapping a resource operation to an HTTP
// call against the Rateorant REST backend and normalizing the response
// shape before returning.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rateorant/client-gateway/internal/api/metrics"
	"github.com/rateorant/client-gateway/internal/core/domain"
)

const defaultTimeout = 15 * time.Second

// Client is the HTTP plumbing shared by every accessor: base URL joining,
// bearer attachment, body codec, error mapping and per-resource metrics.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
		log:  log.With().Str("component", "backend").Logger(),
	}
}

// do performs one backend call. A non-empty token is attached as a bearer
// credential. Statuses >= 400 are returned as *APIError so callers can
// match on the wrapped domain sentinel.
func (c *Client) do(ctx context.Context, resource, method, path, token string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", resource, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", resource, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(resource, "error").Inc()
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(resource, "error").Inc()
		return nil, fmt.Errorf("read %s response: %w", resource, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		metrics.BackendRequestsTotal.WithLabelValues(resource, "error").Inc()
		return nil, newAPIError(resp.StatusCode, data)
	}

	metrics.BackendRequestsTotal.WithLabelValues(resource, "ok").Inc()
	return data, nil
}

// APIError is a backend response with an error status. It unwraps to the
// matching domain sentinel where one exists.
type APIError struct {
	Status int
	Detail string
}

func newAPIError(status int, body []byte) *APIError {
	return &APIError{Status: status, Detail: errorDetail(body)}
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend: %s (status %d)", e.Detail, e.Status)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	default:
		return nil
	}
}

// errorDetail pulls a human-readable message out of an error body. The
// backend has been seen using both {"detail": ...} and {"error": ...}.
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.Error
}

// IsNotFound reports whether an accessor error was a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

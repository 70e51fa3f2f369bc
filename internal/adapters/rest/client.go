// internal/adapters/rest/client.go
package rest

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

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/zamgas/zamgas-client/internal/domain"
)

const (
	DefaultTimeout = 30 * time.Second
	maxBodyBytes   = 4 << 20
)

// TokenSource supplies the bearer token for each request; empty means anonymous.
type TokenSource interface {
	Token() string
}

type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// UnauthorizedHandler is called for every 401 with the request path.
type UnauthorizedHandler func(ctx context.Context, path string)

// APIError is a non-2xx answer from the platform.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	}
	return nil
}

type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized UnauthorizedHandler
	log            log.FieldLogger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithUnauthorizedHandler(h UnauthorizedHandler) Option {
	return func(c *Client) { c.onUnauthorized = h }
}

func WithLogger(l log.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		log:     log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do sends body as JSON and decodes a 2xx answer into out. Empty answers are acks.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	raw, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	logger := c.log.WithFields(log.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s %s: %w", method, path, ctxErr)
		}
		logger.WithError(err).Debug("request failed")
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: read body: %v", domain.ErrNetwork, method, path, err)
	}
	logger.WithFields(log.Fields{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("request done")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Message:    errorMessage(raw, resp.StatusCode),
		}
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized(ctx, path)
		}
		return nil, apiErr
	}
	return raw, nil
}

func errorMessage(raw []byte, status int) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return http.StatusText(status)
}

// IsRetryable is true for failures a user can simply try again.
func IsRetryable(err error) bool {
	if errors.Is(err, domain.ErrNetwork) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 500
}

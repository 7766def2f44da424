// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jeranaias/quizdeck-tui/internal/session"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// DefaultBaseURL is the default quiz service endpoint.
	DefaultBaseURL = "http://localhost:5000/api/v1"

	// DefaultTimeout bounds every request; a timed-out request surfaces as a
	// plain transport failure.
	DefaultTimeout = 10 * time.Second

	// MaxResponseSize caps response bodies to keep a misbehaving server from
	// exhausting memory.
	MaxResponseSize = 4 * 1024 * 1024 // 4MB

	// requestsPerSecond limits outbound request rate. The TUI issues requests
	// from user actions only, so this is generous headroom.
	requestsPerSecond = 20
)

// Shared HTTP client with connection pooling for all quiz service requests.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// =============================================================================
// ERROR TYPES
// =============================================================================

// APIError is a rejected request: the server responded with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server rejected request (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server rejected request (%d)", e.StatusCode)
}

// IsAuthError reports whether the rejection was an authentication or
// authorization failure.
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// ErrNoToken is returned by Login when the server reports success but the
// response carries no credential.
var ErrNoToken = errors.New("login response contained no auth token")

// =============================================================================
// CLIENT
// =============================================================================

// Config holds configuration options for the quiz service client.
type Config struct {
	// BaseURL is the quiz service API root (default: http://localhost:5000/api/v1)
	BaseURL string

	// Timeout for requests (default: 10s)
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// Client communicates with the remote quiz service. All requests flow
// through do(), which consults the session for the bearer token.
//
// Safe for concurrent use.
type Client struct {
	config     *Config
	httpClient *http.Client
	session    *session.Session
	limiter    *rate.Limiter
}

// NewClient creates a client bound to the given session. The session is the
// only authority the client consults for the credential; it never touches
// the durable store directly.
func NewClient(config *Config, sess *session.Session) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Transport: sharedHTTPClient.Transport,
			Timeout:   config.Timeout,
		},
		session: sess,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// REQUEST PATH
// =============================================================================

// do executes one request against the quiz service. body (if non-nil) is
// JSON-encoded; a 2xx response is decoded into out (if non-nil). The bearer
// token is attached when the session holds one; its absence is not an error
// at this layer, the server decides what an unauthenticated request may do.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("request not sent: %w", err)
	}

	endpoint := strings.TrimRight(c.config.BaseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("api: %s %s failed: %v", method, path, err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		log.Printf("api: %s %s: failed to read response: %v", method, path, err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(data),
		}
		log.Printf("api: %s %s rejected: %v", method, path, apiErr)
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			log.Printf("api: %s %s: invalid response body: %v", method, path, err)
			return fmt.Errorf("invalid response body: %w", err)
		}
	}

	return nil
}

// extractMessage pulls a human-readable error out of a rejection body. The
// service uses both {"message": ...} and {"error": ...} shapes.
func extractMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

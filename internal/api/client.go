package api

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
)

const defaultTimeout = 15 * time.Second

// Error carries an application-level failure reported by the backend
// inside an otherwise well-formed envelope.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "backend reported failure"
	}
	return e.Message
}

// Envelope is the uniform wrapper every backend endpoint returns.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Err returns nil for a successful envelope and an *Error otherwise.
func (e *Envelope) Err() error {
	if e.Success {
		return nil
	}
	return &Error{Message: e.Error}
}

// Empty reports whether the envelope carries no payload. Backends send
// either an absent data field or an explicit null; both count.
func (e *Envelope) Empty() bool {
	return len(e.Data) == 0 || bytes.Equal(e.Data, []byte("null"))
}

// Decode unmarshals the envelope payload into v. An empty payload is not
// an error; v is left untouched so callers keep their defaults.
func (e *Envelope) Decode(v any) error {
	if e.Empty() {
		return nil
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// Config holds the inputs needed to build a Client.
type Config struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// Client talks to the platform backend API. It is constructed once at
// startup and injected into each service; it holds no per-request state.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds a Client from cfg, applying the default timeout when no
// HTTP client is supplied.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    httpClient,
	}
}

// BaseURL exposes the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request for path, which may already carry a query string.
func (c *Client) Get(ctx context.Context, path string) (*Envelope, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE request for path.
func (c *Client) Delete(ctx context.Context, path string) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*Envelope, error) {
	if c.baseURL == "" {
		return nil, errors.New("backend base URL is not configured")
	}
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return nil, errors.New("request path is required")
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var envelope Envelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("unmarshal response envelope: status %d: %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if !envelopeCarriesError(&envelope) {
			return nil, fmt.Errorf("backend returned status %d", resp.StatusCode)
		}
	}

	return &envelope, nil
}

// Backends signal application failures with non-2xx statuses while still
// sending a well-formed envelope; keep those so the message survives.
func envelopeCarriesError(e *Envelope) bool {
	return !e.Success && e.Error != ""
}

package proxy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultUserAgent identifies outbound calls; api.github.com rejects requests without one.
const DefaultUserAgent = "dashboard-api"

// Response is the upstream reply before decoding. The body is fully read and the connection released.
type Response struct {
	Status int
	Body   []byte
}

// Client performs the single outbound GET each endpoint needs.
// It is safe for concurrent use by multiple goroutines.
type Client struct {
	http      *http.Client
	userAgent string
	metrics   *Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (e.g. one with an otelhttp transport).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithMetrics records every Fetch outcome on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient builds a Client. Without options it uses a plain *http.Client with no timeout.
// The context passed to Get is forwarded to the outbound request, so trace context and any
// deadline set by the caller apply to it.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET to target and returns the status and raw body.
func (c *Client) Get(ctx context.Context, target string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return &Response{Status: resp.StatusCode, Body: body}, nil
}

// Decode unmarshals a JSON body into out.
func (r *Response) Decode(out any) error {
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("decode upstream body: %w", err)
	}
	return nil
}

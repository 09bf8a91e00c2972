package route

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultEndpoint is used when no endpoint is configured.
const DefaultEndpoint = "http://localhost:5010/process_destination"

// UserAgent is sent with every request.
var UserAgent = "kumoov/1.0"

// Client posts destination queries to the route service.
// A Client is safe for reuse across many calls.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the given endpoint URL.
func NewClient(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Search sends destination to the service exactly once and returns the routes it lists.
// The destination is forwarded verbatim. Every failure is a *RequestError.
func (c *Client) Search(ctx context.Context, destination string) (Result, error) {
	fail := func(op string, status int, err error) (Result, error) {
		return Result{}, &RequestError{Destination: destination, Op: op, StatusCode: status, Err: err}
	}

	payload, err := json.Marshal(Request{Destination: destination})
	if err != nil {
		return fail("encode", 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fail("send", 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail("send", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail("status", resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail("read", 0, fmt.Errorf("failed to read route response body: %w", err))
	}

	var routeResp Response
	if err := json.Unmarshal(body, &routeResp); err != nil {
		return fail("decode", 0, fmt.Errorf("failed to decode route JSON: %w", err))
	}
	if routeResp.Output == nil {
		return fail("decode", 0, errors.New("response has no output list"))
	}

	return Result{Routes: *routeResp.Output}, nil
}

// Package api is the HTTP client for the colorimetry device backend. All
// processing happens on the device; this client only issues requests and
// decodes responses.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jakditstudio/coloGAMA/internal/config"
)

// HTTPError reports a non-2xx backend response.
type HTTPError struct {
	Status int
	URL    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend returned HTTP %d for %s", e.Status, e.URL)
}

// Client talks to one device backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a Client from the merged configuration.
func New(cfg config.Config) *Client {
	hc := &http.Client{}
	if cfg.RequestTimeout > 0 {
		hc.Timeout = time.Duration(cfg.RequestTimeout) * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BackendURL, "/"),
		http:    hc,
	}
}

// Capture triggers one hardware capture run (POST /capture) and returns the
// parsed session. The session gets a fresh id so callers can tell results
// of distinct runs apart.
func (c *Client) Capture(ctx context.Context) (*CaptureSession, error) {
	body, err := c.do(ctx, http.MethodPost, "/capture")
	if err != nil {
		return nil, err
	}
	var s CaptureSession
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("parsing capture response: %w", err)
	}
	s.ID = uuid.New().String()
	return &s, nil
}

// History fetches the categorized report listing (GET /history).
func (c *Client) History(ctx context.Context) (*Listing, error) {
	body, err := c.do(ctx, http.MethodGet, "/history")
	if err != nil {
		return nil, err
	}
	var l Listing
	if err := json.Unmarshal(body, &l); err != nil {
		return nil, fmt.Errorf("parsing history response: %w", err)
	}
	return &l, nil
}

// Fetch retrieves a static resource (report file, capture image). Relative
// URLs are resolved against the backend base URL.
func (c *Client) Fetch(ctx context.Context, resource string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, resource)
}

// Resolve returns the absolute URL for a possibly-relative resource path.
func (c *Client) Resolve(resource string) string {
	if u, err := url.Parse(resource); err == nil && u.IsAbs() {
		return resource
	}
	if !strings.HasPrefix(resource, "/") {
		resource = "/" + resource
	}
	return c.baseURL + resource
}

func (c *Client) do(ctx context.Context, method, resource string) ([]byte, error) {
	target := c.Resolve(resource)
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Status: resp.StatusCode, URL: target}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", target, err)
	}
	return body, nil
}

// Package quarry is a JSON/HTTP client for the Quarry project-management
// API. Every method maps one remote operation and returns either a decoded
// domain value or one of the closed error set in errors.go, so callers can
// classify failures with errors.As without inspecting status codes.
package quarry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/quarrylabs/quarry-mcp/internal/platform/timeouts"
)

// DefaultBaseURL is the public Quarry API endpoint.
const DefaultBaseURL = "https://api.quarry.dev"

// maxErrorBody bounds how much of an error response is read when decoding
// the error envelope.
const maxErrorBody = 1 << 20

// Config holds the settings needed to reach a Quarry deployment.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string
	// Token is the API token sent as a bearer credential. Empty means
	// unauthenticated, which the remote rejects for most operations.
	Token string
	// UserAgent overrides the User-Agent header when non-empty.
	UserAgent string
	// HTTPClient overrides the underlying HTTP client when non-nil.
	HTTPClient *http.Client
}

// Client calls the Quarry REST API.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	http      *http.Client
}

// NewClient creates a client for the given deployment.
func NewClient(cfg Config) *Client {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.APIRequest}
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "quarry-mcp"
	}
	return &Client{
		baseURL:   base,
		token:     cfg.Token,
		userAgent: userAgent,
		http:      httpClient,
	}
}

// Authenticated reports whether the client carries an API token.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// do performs one API request. A non-nil body is sent as JSON; a non-nil out
// receives the decoded response body. Failures are translated into the
// package error set: transport failures become ConnectionError and non-2xx
// statuses go through decodeError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &ConnectionError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp, endpoint)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

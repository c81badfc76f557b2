// Package backend is a thin typed client for the compliance backend API.
// Every call is fire-once: no retries, no caching, no request
// deduplication, no timeout beyond what the caller's context imposes.
// Callers own loading state and decide whether to try again.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the backend at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

// NewWithHTTPClient allows tests to supply their own transport.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	c := New(baseURL)
	c.httpClient = httpClient
	return c
}

// clientFor returns an HTTP client that attaches "Authorization: Bearer"
// via the oauth2 transport when a token is supplied, else the bare client.
func (c *Client) clientFor(ctx context.Context, token string) *http.Client {
	if token == "" {
		return c.httpClient
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
}

// validator is implemented by response types that narrow their own shape
// at the client boundary. Responses that fail validation are rejected
// rather than propagated untyped into views.
type validator interface {
	Validate() error
}

// doJSON issues one request and decodes the JSON response into out.
// token may be empty for unauthenticated endpoints; body may be nil.
func (c *Client) doJSON(ctx context.Context, token, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("[backend doJSON] encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("[backend doJSON] build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.clientFor(ctx, token).Do(req)
	if err != nil {
		return networkError(method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return httpError(resp.StatusCode, payload)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return parseError(method, path, err)
	}
	if v, ok := out.(validator); ok {
		if err := v.Validate(); err != nil {
			return responseError(method, path, err)
		}
	}
	return nil
}

// Package upstream is the HTTP adapter in front of the TMS REST API. It
// injects the session bearer token on the way out and clears the session on
// 401 on the way back; it never redirects (that is the route guard's job).
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tmsdash/internal/session"

	"github.com/google/uuid"
)

// Client wraps outbound requests to the upstream API
type Client struct {
	baseURL  string
	sessions session.Store
	http     *http.Client
}

// New builds a Client rooted at baseURL (the edge-proxy prefix, e.g. "/api",
// or a full origin). Tokens are read from sessions before every request.
func New(baseURL string, sessions session.Store) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		sessions: sessions,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// WithHTTPClient overrides the underlying http.Client (tests, custom transports)
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+normalizePath(path), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if token, ok := c.sessions.Token(); ok {
		// Both the standard and the custom header, as the upstream accepts either
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("X-Auth-Token", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Session is no longer valid upstream; drop it and report the 401.
		// Navigation reacts to the cleared session, not this error.
		c.sessions.Clear()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Detail ErrorDetail `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Detail = payload.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// normalizePath appends the trailing slash the upstream router requires,
// keeping it in front of any query string.
func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		if !strings.HasSuffix(path[:i], "/") {
			return path[:i] + "/" + path[i:]
		}
		return path
	}
	if !strings.HasSuffix(path, "/") {
		return path + "/"
	}
	return path
}

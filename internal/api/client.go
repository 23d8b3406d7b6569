// Package api provides the HTTP client adapter shared by every backend
// module, plus the normalized error type they funnel failures through.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a request when the caller does not override it.
const DefaultTimeout = 10 * time.Second

// Client wraps the underlying transport with a base URL, default timeout and
// header defaults. It issues exactly one request per call: no retries, no
// caching, no response interception.
type Client struct {
	httpClient *http.Client
	authToken  func() string
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. Used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithAuthToken supplies a token source; when it returns a non-empty string
// the request carries a bearer Authorization header.
func WithAuthToken(fn func() string) Option {
	return func(c *Client) { c.authToken = fn }
}

// New creates a client rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestOption adjusts a single request.
type RequestOption func(*requestConfig)

type requestConfig struct {
	timeout time.Duration
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) RequestOption {
	return func(rc *requestConfig) { rc.timeout = d }
}

// GetJSON issues a GET with optional query parameters and decodes the JSON
// response into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any, opts ...RequestOption) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, target, "", nil, out, opts...)
}

// PostJSON issues a POST with a JSON-encoded body.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, c.baseURL+path, "application/json", bytes.NewReader(payload), out, opts...)
}

// PostForm issues a POST with a form-urlencoded body.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPost, c.baseURL+path, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()), out, opts...)
}

// PostMultipart issues a POST with a single file part named fieldName. The
// body is assembled up front; callers cap uploads at 10 MB before reaching
// this method.
func (c *Client) PostMultipart(ctx context.Context, path, fieldName, filename, contentType string, r io.Reader, out any, opts ...RequestOption) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fieldName, filename))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("failed to read upload content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, c.baseURL+path, mw.FormDataContentType(), &buf, out, opts...)
}

func (c *Client) do(ctx context.Context, method, target, contentType string, body io.Reader, out any, opts ...RequestOption) error {
	cfg := requestConfig{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.authToken != nil {
		if token := c.authToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// StatusError is the pass-through failure shape for non-2xx responses. Domain
// modules convert it to an Error via Normalize; it never reaches a caller raw.
type StatusError struct {
	Detail string
	Body   []byte
	Status int
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

func newStatusError(status int, body []byte) *StatusError {
	// FastAPI errors carry {"detail": ...}; the AI service uses {"error": ...}.
	var payload struct {
		Detail  string `json:"detail"`
		ErrText string `json:"error"`
		Message string `json:"message"`
	}
	detail := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Detail != "":
			detail = payload.Detail
		case payload.ErrText != "":
			detail = payload.ErrText
		case payload.Message != "":
			detail = payload.Message
		}
	}
	return &StatusError{Status: status, Detail: detail, Body: body}
}

// Package mwapi provides the shared MediaWiki API plumbing for the adapter:
// the authenticated transport, the process-wide session credential, the bot
// login handshake, and the fetch-fresh-token-then-submit exchange that every
// mutating operation must perform.
package mwapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the authenticated transport. It attaches the session credential
// (when installed) and the identifying User-Agent to every outbound request,
// and surfaces the upstream response without interpreting status codes;
// status handling belongs to each operation handler.
type Client struct {
	httpClient *http.Client
	session    *Session
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates the authenticated transport shared by both backends.
func NewClient(config *Config, session *Session, logger *slog.Logger) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
		session:   session,
		userAgent: config.UserAgent,
		logger:    logger,
	}
}

// Session returns the session cell the transport replays credentials from.
func (c *Client) Session() *Session {
	return c.session
}

// Response carries the upstream status, headers, and raw body back to the
// operation handler that issued the request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the transport status indicates success.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Snippet returns a truncated body for error messages.
func (r *Response) Snippet() string {
	const max = 200
	s := string(r.Body)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// RequestOption mutates the outbound request before dispatch.
type RequestOption func(*http.Request)

// WithHeader sets a header on the outbound request. A Cookie header set this
// way takes precedence over the session credential.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// cloneValues copies query parameters so the transport never mutates the
// caller's map.
func cloneValues(v url.Values) url.Values {
	cloned := make(url.Values, len(v)+1)
	for key, values := range v {
		cloned[key] = append([]string(nil), values...)
	}
	return cloned
}

// Get issues a GET with the given query parameters. format=json is always
// appended; op names the operation for error reporting.
func (c *Client) Get(ctx context.Context, base, op string, query url.Values, opts ...RequestOption) (*Response, error) {
	query = cloneValues(query)
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+query.Encode(), nil)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	return c.do(req, op, opts)
}

// PostForm issues a POST with the action in the query string and a
// form-encoded body, the shape every mutating MediaWiki call uses.
func (c *Client) PostForm(ctx context.Context, base, op string, query, form url.Values, opts ...RequestOption) (*Response, error) {
	query = cloneValues(query)
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"?"+query.Encode(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, op, opts)
}

func (c *Client) do(req *http.Request, op string, opts []RequestOption) (*Response, error) {
	req.Header.Set("User-Agent", c.userAgent)

	for _, opt := range opts {
		opt(req)
	}

	// Replay the session credential unless the caller set its own.
	if req.Header.Get("Cookie") == "" {
		if credential, ok := c.session.Get(); ok {
			req.Header.Set("Cookie", credential)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Upstream request failed",
			"operation", op,
			"url", req.URL.Host,
			"error", err)
		return nil, &TransportError{Op: op, Err: err}
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

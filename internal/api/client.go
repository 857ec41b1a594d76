package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
)

// TokenSource yields the current access token, if any. The token store
// satisfies this.
type TokenSource interface {
	Token() (string, bool)
}

// Client issues JSON requests against one backend base URL.
type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource
	log    *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTokenSource makes the client attach "Authorization: Bearer <token>"
// to every request for which the source yields a non-empty token. With no
// source, or an empty token, the header is omitted entirely.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithLogger routes request/response diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient returns a Client rooted at base, e.g. "https://api.example.com/api".
func NewClient(base string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(base, "/"),
		http: http.DefaultClient,
		log:  log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with in as the JSON body. out may be nil when no
// response body is expected.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.Do(ctx, http.MethodPost, path, in, out)
}

// Do performs one request. Every possible fault comes back as one of the
// typed errors in this package; callers never see anything else.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	var reqBytes []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &TransportError{Op: method + " " + path, Err: err}
		}
		reqBytes = b
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return &TransportError{Op: method + " " + path, Err: err}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok, ok := c.tokens.Token(); ok && tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	c.log.Printf("api: --> %s %s %s", method, path, reqBytes)

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: method + " " + path, Err: err}
	}

	c.log.Printf("api: <-- %d %s %s %s", resp.StatusCode, method, path, respBytes)

	if resp.StatusCode/100 != 2 {
		return &HTTPError{StatusCode: resp.StatusCode, Message: serverMessage(respBytes, resp.Status)}
	}
	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(respBytes)) == 0 {
		return ErrEmptyBody
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// serverMessage pulls the human-readable message out of an error body.
// Backends vary in which field they use; fall back to the HTTP status line.
func serverMessage(body []byte, status string) string {
	var fields struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, m := range []string{fields.Message, fields.Error, fields.Detail} {
			if m != "" {
				return m
			}
		}
	}
	return status
}

package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxBodyBytes = 1 << 20

// TokenStore holds the auth token the server hands out as a cookie.
// Implementations may persist it; errors on their side are theirs to log.
type TokenStore interface {
	Token() string
	SetToken(token string)
	ClearToken()
}

// APIError is a non-2xx response, carrying the server's message envelope
// when one was present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Client is a JSON client for the pizzeria API. Every call takes a
// context and is bounded by the client timeout.
type Client struct {
	baseURL    string
	http       *http.Client
	cookieName string
	tokens     TokenStore
}

// NewClient builds a client rooted at baseURL. cookieName and tokens are
// optional; when set, the named cookie is attached to requests and
// captured from responses.
func NewClient(baseURL string, timeout time.Duration, cookieName string, tokens TokenStore) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       &http.Client{Timeout: timeout},
		cookieName: cookieName,
		tokens:     tokens,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, in, out)
}

func (c *Client) PostWithHeaders(ctx context.Context, path string, headers map[string]string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, headers, in, out)
}

func (c *Client) do(ctx context.Context, method, path string, headers map[string]string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if c.tokens != nil && c.cookieName != "" {
		if token := c.tokens.Token(); token != "" {
			req.AddCookie(&http.Cookie{Name: c.cookieName, Value: token})
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.captureToken(resp)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &envelope)
		return &APIError{Status: resp.StatusCode, Message: envelope.Message}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) captureToken(resp *http.Response) {
	if c.tokens == nil || c.cookieName == "" {
		return
	}
	for _, ck := range resp.Cookies() {
		if ck.Name != c.cookieName {
			continue
		}
		if ck.Value == "" || ck.MaxAge < 0 {
			c.tokens.ClearToken()
		} else {
			c.tokens.SetToken(ck.Value)
		}
	}
}

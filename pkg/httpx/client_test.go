package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type memTokens struct {
	mu    sync.Mutex
	token string
}

func (m *memTokens) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *memTokens) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *memTokens) ClearToken() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}

func TestGetDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pizzas" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Margherita"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, "", nil)

	var out []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := c.Get(context.Background(), "/pizzas", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Margherita" {
		t.Fatalf("expected Margherita, got %+v", out)
	}
}

func TestErrorEnvelope(t *testing.T) {
	t.Run("message decoded", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"bad credentials"}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, time.Second, "", nil)
		err := c.Post(context.Background(), "/auth/login", map[string]string{}, nil)

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.Status != http.StatusBadRequest || apiErr.Message != "bad credentials" {
			t.Fatalf("got %+v", apiErr)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, time.Second, "", nil)
		err := c.Get(context.Background(), "/orders", nil)

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.Status != http.StatusInternalServerError || apiErr.Message != "" {
			t.Fatalf("got %+v", apiErr)
		}
	})
}

func TestAuthCookieRoundTrip(t *testing.T) {
	const cookieName = "pizzeria-jwt"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: cookieName, Value: "tok-123"})
		case "/auth/me":
			ck, err := r.Cookie(cookieName)
			if err != nil || ck.Value != "tok-123" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
		case "/auth/logout":
			http.SetCookie(w, &http.Cookie{Name: cookieName, Value: "", MaxAge: -1})
		}
	}))
	defer srv.Close()

	tokens := &memTokens{}
	c := NewClient(srv.URL, time.Second, cookieName, tokens)
	ctx := context.Background()

	if err := c.Post(ctx, "/auth/login", nil, nil); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tokens.Token() != "tok-123" {
		t.Fatalf("expected captured token, got %q", tokens.Token())
	}

	if err := c.Get(ctx, "/auth/me", nil); err != nil {
		t.Fatalf("expected cookie to be attached, got %v", err)
	}

	if err := c.Post(ctx, "/auth/logout", nil, nil); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if tokens.Token() != "" {
		t.Fatalf("expected token cleared, got %q", tokens.Token())
	}
}

func TestPostWithHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Idempotency-Key"); got != "attempt-1" {
			t.Errorf("expected idempotency header, got %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected json content type, got %q", got)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, "", nil)
	headers := map[string]string{"X-Idempotency-Key": "attempt-1"}
	if err := c.PostWithHeaders(context.Background(), "/orders", headers, map[string]any{}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

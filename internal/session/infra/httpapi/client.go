package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dwikikusuma/pizzeria-storefront/internal/session/app"
	"github.com/dwikikusuma/pizzeria-storefront/internal/session/domain"
	"github.com/dwikikusuma/pizzeria-storefront/pkg/httpx"
)

// AuthCookie is the cookie the identity service uses for its session
// JWT.
const AuthCookie = "pizzeria-jwt"

// Client talks to the identity endpoints. The auth cookie round-trip is
// handled by the shared httpx client.
type Client struct {
	api *httpx.Client
}

func NewClient(api *httpx.Client) *Client {
	return &Client{api: api}
}

type userDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (d userDTO) toDomain() domain.User {
	return domain.User{
		Username: d.Username,
		Email:    d.Email,
		Role:     d.Role,
	}
}

func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	var dto userDTO
	if err := c.api.Get(ctx, "/auth/me", &dto); err != nil {
		var apiErr *httpx.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return domain.User{}, app.ErrUnauthenticated
		}
		return domain.User{}, fmt.Errorf("current user: %w", err)
	}
	return dto.toDomain(), nil
}

func (c *Client) Login(ctx context.Context, username, password string) (domain.User, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var dto userDTO
	if err := c.api.Post(ctx, "/auth/login", body, &dto); err != nil {
		return domain.User{}, fmt.Errorf("login: %w", err)
	}
	return dto.toDomain(), nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	if err := c.api.Post(ctx, "/auth/register", body, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.api.Post(ctx, "/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

package app

import (
	"context"
	"errors"

	"github.com/dwikikusuma/pizzeria-storefront/internal/session/domain"
)

// ErrUnauthenticated means the identity service answered cleanly that
// no user is logged in, as opposed to being unreachable.
var ErrUnauthenticated = errors.New("unauthenticated")

type IdentityClient interface {
	CurrentUser(ctx context.Context) (domain.User, error)
	Login(ctx context.Context, username, password string) (domain.User, error)
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context) error
}

// CredentialStore drops the locally held auth token. Logout clears it
// even when the server round-trip fails.
type CredentialStore interface {
	ClearToken()
}

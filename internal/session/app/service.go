package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/dwikikusuma/pizzeria-storefront/internal/session/domain"
)

var ErrMissingFields = errors.New("all fields are required")

// Service owns the current session. It is resolved once at startup,
// replaced on login, and cleared on logout.
type Service struct {
	ids    IdentityClient
	tokens CredentialStore
	log    *slog.Logger

	mu      sync.Mutex
	session domain.Session
}

func NewService(ids IdentityClient, tokens CredentialStore, log *slog.Logger) *Service {
	return &Service{
		ids:     ids,
		tokens:  tokens,
		log:     log,
		session: domain.Unknown(),
	}
}

// Resolve asks the identity service who the current user is. A clean
// 401 yields Anonymous; any other failure yields Unknown. Neither
// blocks the storefront.
func (s *Service) Resolve(ctx context.Context) domain.Session {
	user, err := s.ids.CurrentUser(ctx)

	var next domain.Session
	switch {
	case err == nil:
		next = domain.Authenticated(user)
	case errors.Is(err, ErrUnauthenticated):
		next = domain.Anonymous()
	default:
		s.log.Warn("session resolution failed", slog.Any("err", err))
		next = domain.Unknown()
	}

	s.mu.Lock()
	s.session = next
	s.mu.Unlock()
	return next
}

func (s *Service) Current() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Login validates inputs locally before any network call, then replaces
// the session on success. Failures leave the session untouched so the
// user can correct and resubmit.
func (s *Service) Login(ctx context.Context, username, password string) (domain.Session, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return domain.Session{}, ErrMissingFields
	}

	user, err := s.ids.Login(ctx, username, password)
	if err != nil {
		return domain.Session{}, err
	}

	next := domain.Authenticated(user)
	s.mu.Lock()
	s.session = next
	s.mu.Unlock()
	return next, nil
}

// Register creates an account. It deliberately does not authenticate;
// the caller switches the auth flow to login with a confirmation.
func (s *Service) Register(ctx context.Context, username, email, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return ErrMissingFields
	}
	return s.ids.Register(ctx, username, email, password)
}

// Logout invalidates the server session best-effort: the local session
// and token are cleared even when the network call fails.
func (s *Service) Logout(ctx context.Context) {
	if err := s.ids.Logout(ctx); err != nil {
		s.log.Warn("logout request failed", slog.Any("err", err))
	}

	s.tokens.ClearToken()

	s.mu.Lock()
	s.session = domain.Anonymous()
	s.mu.Unlock()
}

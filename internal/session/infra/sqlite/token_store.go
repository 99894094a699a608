package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Slot name matches the auth cookie the pizzeria API issues, so the
// local db reads as a mirror of the session cookie.
const tokenSlot = "pizzeria-jwt"

// TokenStore caches the auth token in memory and mirrors it to the
// local database so the session survives process restarts. Persistence
// failures are logged, never surfaced: the in-memory token keeps the
// running process working.
type TokenStore struct {
	db  *sql.DB
	log *slog.Logger

	mu    sync.Mutex
	token string
}

func NewTokenStore(db *sql.DB, log *slog.Logger) (*TokenStore, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS auth_tokens (
		slot TEXT PRIMARY KEY,
		token TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("create auth_tokens table: %w", err)
	}

	s := &TokenStore{db: db, log: log}

	var token string
	err = db.QueryRow(`SELECT token FROM auth_tokens WHERE slot = ?`, tokenSlot).Scan(&token)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("load auth token: %w", err)
	default:
		s.token = token
	}

	return s, nil
}

func (s *TokenStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *TokenStore) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO auth_tokens (slot, token, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at`,
		tokenSlot, token, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		s.log.Warn("auth token save failed", slog.Any("err", err))
	}
}

func (s *TokenStore) ClearToken() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM auth_tokens WHERE slot = ?`, tokenSlot); err != nil {
		s.log.Warn("auth token clear failed", slog.Any("err", err))
	}
}

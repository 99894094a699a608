package adapter

import (
	sessionapp "github.com/dwikikusuma/pizzeria-storefront/internal/session/app"
)

type SessionServiceReader struct {
	svc *sessionapp.Service
}

func NewSessionServiceReader(svc *sessionapp.Service) *SessionServiceReader {
	return &SessionServiceReader{svc: svc}
}

func (r *SessionServiceReader) LoggedIn() bool {
	return r.svc.Current().LoggedIn()
}

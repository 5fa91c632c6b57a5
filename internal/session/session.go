// Package session manages the admin auth session: login, register and
// logout against the backend, with the bearer token persisted locally so a
// stored login resolves without any network call.
package session

import (
	"context"
	"strings"

	"zahab/internal/backend"
	"zahab/internal/domain"
)

// Result is what auth operations resolve to; failures carry a display
// message instead of an error so callers never have to recover from a panic
// or a thrown exception at this boundary.
type Result struct {
	OK      bool
	Message string
}

type Service struct {
	API   *backend.Client
	Store *Store
}

func NewService(api *backend.Client, store *Store) *Service {
	return &Service{API: api, Store: store}
}

// Current resolves the session from durable storage only. A stored
// token+user is trusted as Authenticated; no revalidation round-trip.
func (s *Service) Current(sid string) (*domain.AdminUser, string) {
	if sid == "" {
		return nil, ""
	}
	rec, err := s.Store.Load(sid)
	if err != nil || rec == nil || rec.Token == "" {
		return nil, ""
	}
	return &domain.AdminUser{Username: rec.Username, Role: rec.Role}, rec.Token
}

func (s *Service) Login(ctx context.Context, sid, username, password string) Result {
	resp, err := s.API.Login(ctx, username, password)
	if err != nil {
		return Result{Message: backend.Display(err)}
	}
	if resp.Token == "" {
		return Result{Message: "Login failed. Please try again."}
	}
	user := domain.AdminUser{Username: resp.Username, Role: resp.Role}
	if err := s.Store.Save(sid, resp.Token, user); err != nil {
		return Result{Message: "Could not save your session. Please try again."}
	}
	return Result{OK: true}
}

// Register relies on the backend's message text: success is signalled by a
// "success" substring in a free-text field, not a structured code. That is
// the external contract; do not "fix" it here.
func (s *Service) Register(ctx context.Context, username, password, role string) Result {
	msg, err := s.API.Register(ctx, username, password, role)
	if err != nil {
		return Result{Message: backend.Display(err)}
	}
	if strings.Contains(strings.ToLower(msg), "success") {
		return Result{OK: true, Message: msg}
	}
	if msg == "" {
		msg = "Registration failed. Please try again."
	}
	return Result{Message: msg}
}

// Logout invalidates the token server-side when it can, then clears local
// state unconditionally. A failing backend never blocks the local logout.
func (s *Service) Logout(ctx context.Context, sid string) {
	if _, tok := s.Current(sid); tok != "" {
		_ = s.API.WithToken(tok).Logout(ctx)
	}
	_ = s.Store.Clear(sid)
}

// Package session holds the process-wide authentication state: the access
// token, the user profile and the in-flight flag, with the token mirrored to
// persistent storage on every mutation.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/u-share/sortflow/internal/auth"
	"github.com/u-share/sortflow/internal/model"
)

// Store is the single session instance for the process. The mutex guards
// field access; it does not serialize whole operations, so two concurrent
// Login calls remain last-write-wins on the token, matching the platform's
// documented behavior.
type Store struct {
	auth    *auth.Client
	tokens  TokenStore
	user    *model.User
	token   string
	loading bool
	mu      sync.RWMutex
}

// NewStore creates a session hydrated from the token store. A failed read is
// treated as logged-out.
func NewStore(authClient *auth.Client, tokens TokenStore) *Store {
	s := &Store{auth: authClient, tokens: tokens}
	token, err := tokens.Load()
	if err != nil {
		slog.Warn("failed to load persisted token, starting logged out", "error", err)
		return s
	}
	s.token = token
	return s
}

// Token returns the current access token, empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsLoggedIn reports whether a token is set.
func (s *Store) IsLoggedIn() bool {
	return s.Token() != ""
}

// User returns the cached profile, nil before the first successful refresh.
func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Loading reports whether a login or registration is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Login authenticates, persists the token, then refreshes the profile. The
// loading flag is cleared on every exit path. Each sub-call keeps its own
// timeout; there is no whole-sequence deadline beyond the caller's context.
func (s *Store) Login(ctx context.Context, creds model.Credentials) error {
	s.setLoading(true)
	defer s.setLoading(false)

	token, err := s.auth.Login(ctx, creds)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.tokens.Save(token); err != nil {
		slog.Warn("failed to persist token", "error", err)
	}

	return s.RefreshProfile(ctx)
}

// Register creates an account. It does not log the new user in.
func (s *Store) Register(ctx context.Context, creds model.Credentials) (model.User, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	return s.auth.Register(ctx, creds)
}

// RefreshProfile fetches and caches the user profile. Without a token it is a
// no-op. A failed fetch means the token is stale or invalid: the whole
// session is cleared before the error propagates.
func (s *Store) RefreshProfile(ctx context.Context) error {
	if !s.IsLoggedIn() {
		return nil
	}

	user, err := s.auth.Profile(ctx)
	if err != nil {
		slog.Error("profile refresh failed, clearing session", "error", err)
		s.Logout()
		return err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return nil
}

// Logout clears the token, the profile and the persisted copy. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.tokens.Clear(); err != nil {
		slog.Warn("failed to clear persisted token", "error", err)
	}
}

// Initialize validates a hydrated token by refreshing the profile. Failures
// are logged and swallowed so startup never fails on a stale token; the
// failed refresh has already logged the session out.
func (s *Store) Initialize(ctx context.Context) {
	if !s.IsLoggedIn() {
		return
	}
	if err := s.RefreshProfile(ctx); err != nil {
		slog.Warn("session initialization failed, continuing logged out", "error", err)
	}
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

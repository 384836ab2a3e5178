// Package session owns the client-side authentication session: the current
// principal, the credential token, and its durable storage. One Store exists
// per running client; construct it explicitly and pass it by reference so
// tests can build independent instances — there are no package globals.
package session

import (
	"context"
	"sync"

	"github.com/asilingas/fambudg/pkg/access"
)

// State names the phases of the session lifecycle.
type State int

const (
	// StateUnresolved is the state before Initialize has run.
	StateUnresolved State = iota
	// StateResolving is the startup identity-resolution window. Entered at
	// most once; login and logout never re-enter it.
	StateResolving
	// StateAuthenticated means a principal is established.
	StateAuthenticated
	// StateAnonymous means resolution finished without a principal.
	StateAnonymous
)

// Store is the single source of truth for "who is currently logged in".
// It is the only component permitted to mutate the token storage.
type Store struct {
	mu        sync.Mutex
	tokens    TokenStore
	api       IdentityAPI
	state     State
	principal *access.Principal
}

// NewStore creates an unresolved session backed by the given token storage
// and identity API.
func NewStore(tokens TokenStore, api IdentityAPI) *Store {
	return &Store{tokens: tokens, api: api, state: StateUnresolved}
}

// Initialize resolves the persisted token, if any, to an identity. With no
// stored token the session is immediately anonymous and no network call is
// made. A stored token is sent to the identity endpoint; on any failure —
// network error, 401, malformed response — the token is purged and the
// session degrades silently to anonymous. That failure is deliberately not
// surfaced: a stale token on first load is indistinguishable from never
// having logged in, and must not block startup with an error.
//
// Initialize is a no-op after the first call.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	if s.state != StateUnresolved {
		s.mu.Unlock()
		return
	}

	token, err := s.tokens.Load()
	if err != nil || token == "" {
		s.state = StateAnonymous
		s.mu.Unlock()
		return
	}
	s.state = StateResolving
	s.mu.Unlock()

	p, err := s.api.ResolveIdentity(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		_ = s.tokens.Clear()
		s.principal = nil
		s.state = StateAnonymous
		return
	}
	s.principal = &p
	s.state = StateAuthenticated
}

// Login exchanges credentials for a token. On success the token is persisted
// and the principal established. On failure nothing changes and the error —
// the server's message when it sent one — is returned for display; the
// caller decides whether to resubmit.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, p, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.tokens.Save(token); err != nil {
		return err
	}
	s.principal = &p
	s.state = StateAuthenticated
	return nil
}

// Logout purges the stored token and clears the principal. It is synchronous,
// always succeeds, and makes no server round-trip: logout is client-local
// token invalidation.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.tokens.Clear()
	s.principal = nil
	s.state = StateAnonymous
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Principal returns the current identity, or nil when anonymous.
func (s *Store) Principal() *access.Principal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.principal == nil {
		return nil
	}
	p := *s.principal
	return &p
}

// Snapshot returns the guard's view of the session. Resolving stays true
// until identity resolution reaches a terminal state, so guards report
// Pending rather than bouncing to login during startup.
func (s *Store) Snapshot() access.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := access.Session{
		Resolving: s.state == StateUnresolved || s.state == StateResolving,
	}
	if s.principal != nil {
		p := *s.principal
		snap.Principal = &p
	}
	return snap
}

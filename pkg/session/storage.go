package session

import "sync"

// TokenStore is the durable home of the credential token. The session Store
// is the only component that may mutate it: Login writes, Logout and failed
// identity resolution purge.
type TokenStore interface {
	// Load returns the stored token, or "" when logged out.
	Load() (string, error)
	// Save persists the token.
	Save(token string) error
	// Clear removes the token. Clearing an absent token is not an error.
	Clear() error
}

// MemoryTokenStore is an in-memory TokenStore for tests and ephemeral
// sessions.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryTokenStore returns an empty in-memory store, optionally pre-seeded
// with a token.
func NewMemoryTokenStore(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: token}
}

func (m *MemoryTokenStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryTokenStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryTokenStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

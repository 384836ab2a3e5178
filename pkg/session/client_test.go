package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid or expired token"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id": "u1", "email": "a@b.com", "name": "Alice", "role": "admin",
		})
	})
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid email or password"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "good-token",
			"user": map[string]string{
				"id": "u1", "email": "a@b.com", "name": "Alice", "role": "admin",
			},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_ResolveIdentity(t *testing.T) {
	srv := newAuthServer(t)
	c := NewClient(srv.URL)

	p, err := c.ResolveIdentity(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.Name)

	_, err = c.ResolveIdentity(context.Background(), "stale")
	assert.Error(t, err)
}

func TestClient_Login(t *testing.T) {
	srv := newAuthServer(t)
	c := NewClient(srv.URL)

	token, p, err := c.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "good-token", token)
	assert.Equal(t, "u1", p.ID)
}

func TestClient_LoginRejectionUsesServerMessage(t *testing.T) {
	srv := newAuthServer(t)
	c := NewClient(srv.URL)

	_, _, err := c.Login(context.Background(), "a@b.com", "wrong")
	require.EqualError(t, err, "invalid email or password")
}

func TestClient_LoginRejectionGenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)
	_, _, err := c.Login(context.Background(), "a@b.com", "pw")
	require.EqualError(t, err, "login failed")
}

// End-to-end over HTTP: login, reload, resolve — the round trip from the
// design's testable properties.
func TestStore_RoundTripOverHTTP(t *testing.T) {
	srv := newAuthServer(t)
	client := NewClient(srv.URL)
	tokens := NewMemoryTokenStore("")

	store := NewStore(tokens, client)
	store.Initialize(context.Background())
	require.NoError(t, store.Login(context.Background(), "a@b.com", "pw"))

	reloaded := NewStore(tokens, client)
	reloaded.Initialize(context.Background())
	require.NotNil(t, reloaded.Principal())
	assert.Equal(t, "u1", reloaded.Principal().ID)

	// A 401 on resolution leaves storage purged and the session anonymous.
	require.NoError(t, tokens.Save("stale"))
	again := NewStore(tokens, client)
	again.Initialize(context.Background())
	assert.Equal(t, StateAnonymous, again.State())
	stored, _ := tokens.Load()
	assert.Empty(t, stored)
}

package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asilingas/fambudg/pkg/access"
)

// fakeAPI is a scripted IdentityAPI that counts calls.
type fakeAPI struct {
	resolveCalls int
	loginCalls   int

	principal  access.Principal
	resolveErr error

	loginToken string
	loginErr   error
}

func (f *fakeAPI) ResolveIdentity(_ context.Context, token string) (access.Principal, error) {
	f.resolveCalls++
	if f.resolveErr != nil {
		return access.Principal{}, f.resolveErr
	}
	return f.principal, nil
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (string, access.Principal, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return "", access.Principal{}, f.loginErr
	}
	return f.loginToken, f.principal, nil
}

var alice = access.Principal{ID: "u1", Email: "a@b.com", Name: "Alice", Role: access.RoleAdmin}

func TestInitialize_NoToken(t *testing.T) {
	api := &fakeAPI{}
	store := NewStore(NewMemoryTokenStore(""), api)

	store.Initialize(context.Background())

	assert.Equal(t, StateAnonymous, store.State())
	assert.Nil(t, store.Principal())
	// Absent token means an immediate terminal state with no network call.
	assert.Zero(t, api.resolveCalls)
}

func TestInitialize_ValidToken(t *testing.T) {
	api := &fakeAPI{principal: alice}
	tokens := NewMemoryTokenStore("tok-1")
	store := NewStore(tokens, api)

	store.Initialize(context.Background())

	assert.Equal(t, StateAuthenticated, store.State())
	require.NotNil(t, store.Principal())
	assert.Equal(t, "Alice", store.Principal().Name)

	stored, _ := tokens.Load()
	assert.Equal(t, "tok-1", stored)
}

func TestInitialize_StaleTokenPurgedSilently(t *testing.T) {
	api := &fakeAPI{resolveErr: errors.New("401")}
	tokens := NewMemoryTokenStore("stale")
	store := NewStore(tokens, api)

	store.Initialize(context.Background())

	// Indistinguishable from never having logged in.
	assert.Equal(t, StateAnonymous, store.State())
	assert.Nil(t, store.Principal())
	stored, _ := tokens.Load()
	assert.Empty(t, stored)
}

func TestInitialize_RunsOnce(t *testing.T) {
	api := &fakeAPI{principal: alice}
	store := NewStore(NewMemoryTokenStore("tok"), api)

	store.Initialize(context.Background())
	store.Initialize(context.Background())

	assert.Equal(t, 1, api.resolveCalls)
}

func TestLogin_PersistsTokenAndPrincipal(t *testing.T) {
	api := &fakeAPI{principal: alice, loginToken: "fresh"}
	tokens := NewMemoryTokenStore("")
	store := NewStore(tokens, api)
	store.Initialize(context.Background())

	err := store.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, store.State())
	stored, _ := tokens.Load()
	assert.Equal(t, "fresh", stored)

	// Simulated reload: a fresh store with the persisted token resolves to
	// the same principal.
	reloaded := NewStore(tokens, &fakeAPI{principal: alice})
	reloaded.Initialize(context.Background())
	require.NotNil(t, reloaded.Principal())
	assert.Equal(t, alice.ID, reloaded.Principal().ID)
}

func TestLogin_FailureDoesNotMutateState(t *testing.T) {
	api := &fakeAPI{loginErr: errors.New("invalid email or password")}
	tokens := NewMemoryTokenStore("")
	store := NewStore(tokens, api)
	store.Initialize(context.Background())

	err := store.Login(context.Background(), "a@b.com", "wrong")
	require.EqualError(t, err, "invalid email or password")

	assert.Equal(t, StateAnonymous, store.State())
	assert.Nil(t, store.Principal())
	stored, _ := tokens.Load()
	assert.Empty(t, stored)
}

func TestLogout_PurgesTokenWithoutServerCall(t *testing.T) {
	api := &fakeAPI{principal: alice, loginToken: "tok"}
	tokens := NewMemoryTokenStore("")
	store := NewStore(tokens, api)
	store.Initialize(context.Background())
	require.NoError(t, store.Login(context.Background(), "a@b.com", "pw"))

	store.Logout()

	assert.Equal(t, StateAnonymous, store.State())
	assert.Nil(t, store.Principal())
	stored, _ := tokens.Load()
	assert.Empty(t, stored)

	// A fresh session after logout is anonymous without touching the network.
	fresh := &fakeAPI{}
	reloaded := NewStore(tokens, fresh)
	reloaded.Initialize(context.Background())
	assert.Equal(t, StateAnonymous, reloaded.State())
	assert.Zero(t, fresh.resolveCalls)
}

func TestSnapshot_ResolvingStates(t *testing.T) {
	store := NewStore(NewMemoryTokenStore("tok"), &fakeAPI{principal: alice})

	// Before Initialize the guard must see a resolving session.
	snap := store.Snapshot()
	assert.True(t, snap.Resolving)
	assert.Nil(t, snap.Principal)

	store.Initialize(context.Background())
	snap = store.Snapshot()
	assert.False(t, snap.Resolving)
	require.NotNil(t, snap.Principal)
	assert.Equal(t, access.RoleAdmin, snap.Principal.Role)
}

func TestSnapshot_GuardIntegration(t *testing.T) {
	store := NewStore(NewMemoryTokenStore(""), &fakeAPI{})
	rr, ok := access.RequirementFor("/budgets")
	require.True(t, ok)

	// Unresolved session: pending, never a redirect to login.
	assert.Equal(t, access.Pending, access.Evaluate(store.Snapshot(), rr))

	store.Initialize(context.Background())
	assert.Equal(t, access.DenyUnauthenticated, access.Evaluate(store.Snapshot(), rr))
}

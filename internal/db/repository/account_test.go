package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "github.com/asilingas/fambudg/internal/db"
	"github.com/asilingas/fambudg/internal/domain"
	"github.com/asilingas/fambudg/pkg/access"
)

func createTestAccount(t *testing.T, repo *AccountRepo, ownerID string, balance int64) *domain.Account {
	t.Helper()
	a, err := repo.Create(context.Background(), ownerID, &domain.CreateAccountRequest{
		Name: "Checking", Type: domain.AccountChecking, Balance: balance,
	})
	require.NoError(t, err)
	return a
}

func TestAccountRepo_CreateAndBalance(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	users := NewUserRepo(writeDB)
	repo := NewAccountRepo(writeDB)
	ctx := context.Background()

	owner := createTestUser(t, users, "owner@example.com", access.RoleMember)
	a := createTestAccount(t, repo, owner.ID, 10_000)
	assert.EqualValues(t, 10_000, a.Balance)
	assert.Equal(t, "EUR", a.Currency)

	require.NoError(t, repo.UpdateBalance(ctx, a.ID, -2_500))
	require.NoError(t, repo.UpdateBalance(ctx, a.ID, 500))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 8_000, got.Balance)
}

func TestAccountRepo_UpdateBalance_NotFound(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewAccountRepo(writeDB)

	err := repo.UpdateBalance(context.Background(), "missing", 100)
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestAccountRepo_ListByOwner(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	users := NewUserRepo(writeDB)
	repo := NewAccountRepo(writeDB)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice@example.com", access.RoleAdmin)
	bob := createTestUser(t, users, "bob@example.com", access.RoleMember)
	createTestAccount(t, repo, alice.ID, 0)
	createTestAccount(t, repo, alice.ID, 0)
	createTestAccount(t, repo, bob.ID, 0)

	mine, err := repo.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAccountRepo_Update(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	users := NewUserRepo(writeDB)
	repo := NewAccountRepo(writeDB)
	ctx := context.Background()

	owner := createTestUser(t, users, "u@example.com", access.RoleMember)
	a := createTestAccount(t, repo, owner.ID, 100)

	name := "Renamed"
	typ := domain.AccountSavings
	updated, err := repo.Update(ctx, a.ID, &domain.UpdateAccountRequest{Name: &name, Type: &typ})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, domain.AccountSavings, updated.Type)
	assert.EqualValues(t, 100, updated.Balance, "update must not touch the balance")
}

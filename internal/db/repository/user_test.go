package repository

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "github.com/asilingas/fambudg/internal/db"
	"github.com/asilingas/fambudg/internal/domain"
	"github.com/asilingas/fambudg/pkg/access"
)

func createTestUser(t *testing.T, repo *UserRepo, email string, role access.Role) *domain.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &domain.User{
		Email:        email,
		Name:         "Test " + email,
		Role:         role,
		PasswordHash: "x",
	})
	require.NoError(t, err)
	return u
}

func TestUserRepo_CreateAndGet(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewUserRepo(writeDB)
	ctx := context.Background()

	u := createTestUser(t, repo, "alice@example.com", access.RoleAdmin)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, access.RoleAdmin, u.Role)
	assert.False(t, u.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewUserRepo(writeDB)

	createTestUser(t, repo, "dup@example.com", access.RoleMember)
	_, err := repo.Create(context.Background(), &domain.User{
		Email: "dup@example.com", Name: "Dup", Role: access.RoleMember, PasswordHash: "x",
	})
	require.Error(t, err)
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestUserRepo_GetByID_NotFound(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewUserRepo(writeDB)

	_, err := repo.GetByID(context.Background(), "missing")
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestUserRepo_UpdateRole(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewUserRepo(writeDB)
	ctx := context.Background()

	u := createTestUser(t, repo, "kid@example.com", access.RoleChild)
	newRole := access.RoleMember
	newName := "Grown Up"
	updated, err := repo.Update(ctx, u.ID, &domain.UpdateUserRequest{Name: &newName, Role: &newRole})
	require.NoError(t, err)
	assert.Equal(t, access.RoleMember, updated.Role)
	assert.Equal(t, "Grown Up", updated.Name)
}

func TestUserRepo_ListAndCount(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewUserRepo(writeDB)
	ctx := context.Background()

	createTestUser(t, repo, "a@example.com", access.RoleAdmin)
	createTestUser(t, repo, "b@example.com", access.RoleMember)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestUserRepo_Delete(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := NewUserRepo(writeDB)
	ctx := context.Background()

	u := createTestUser(t, repo, "gone@example.com", access.RoleMember)
	require.NoError(t, repo.Delete(ctx, u.ID))

	var nf *domain.NotFoundError
	_, err := repo.GetByID(ctx, u.ID)
	assert.ErrorAs(t, err, &nf)

	err = repo.Delete(ctx, u.ID)
	assert.ErrorAs(t, err, &nf)
}

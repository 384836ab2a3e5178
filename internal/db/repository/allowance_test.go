package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "github.com/asilingas/fambudg/internal/db"
	"github.com/asilingas/fambudg/internal/domain"
	"github.com/asilingas/fambudg/pkg/access"
)

func TestAllowanceRepo_CRUD(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	users := NewUserRepo(writeDB)
	repo := NewAllowanceRepo(writeDB)
	ctx := context.Background()

	kid := createTestUser(t, users, "kid@example.com", access.RoleChild)

	a, err := repo.Create(ctx, &domain.CreateAllowanceRequest{
		UserID: kid.ID, Amount: 2_000, PeriodStart: "2026-08-01",
	})
	require.NoError(t, err)
	assert.Equal(t, kid.ID, a.UserID)

	// One allowance per user.
	_, err = repo.Create(ctx, &domain.CreateAllowanceRequest{
		UserID: kid.ID, Amount: 500, PeriodStart: "2026-08-01",
	})
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)

	byUser, err := repo.GetByUserID(ctx, kid.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, byUser.ID)

	amount := int64(2_500)
	updated, err := repo.Update(ctx, a.ID, &domain.UpdateAllowanceRequest{Amount: &amount})
	require.NoError(t, err)
	assert.EqualValues(t, 2_500, updated.Amount)

	require.NoError(t, repo.Delete(ctx, a.ID))
	var nf *domain.NotFoundError
	_, err = repo.GetByID(ctx, a.ID)
	assert.ErrorAs(t, err, &nf)
}

func TestAllowanceRepo_SpentSince(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	users := NewUserRepo(writeDB)
	accounts := NewAccountRepo(writeDB)
	categories := NewCategoryRepo(writeDB)
	txns := NewTransactionRepo(writeDB)
	repo := NewAllowanceRepo(writeDB)
	ctx := context.Background()

	kid := createTestUser(t, users, "spender@example.com", access.RoleChild)
	acct := createTestAccount(t, accounts, kid.ID, 5_000)
	cat, err := categories.Create(ctx, &domain.CreateCategoryRequest{
		Name: "Pocket money", Type: domain.CategoryExpense,
	})
	require.NoError(t, err)

	for _, c := range []struct {
		amount int64
		date   string
		typ    domain.TransactionType
	}{
		{-300, "2026-08-05", domain.TransactionExpense},
		{-200, "2026-08-10", domain.TransactionExpense},
		{-999, "2026-07-20", domain.TransactionExpense}, // before period
		{1_000, "2026-08-12", domain.TransactionIncome}, // income never counts
	} {
		_, err := txns.Create(ctx, kid.ID, &domain.CreateTransactionRequest{
			AccountID: acct.ID, CategoryID: cat.ID,
			Amount: c.amount, Type: c.typ, Date: c.date,
		})
		require.NoError(t, err)
	}

	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	spent, err := repo.SpentSince(ctx, kid.ID, since)
	require.NoError(t, err)
	assert.EqualValues(t, 500, spent)
}

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

func TestBudgetRepo_CRUD(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	categories := NewCategoryRepo(writeDB)
	repo := NewBudgetRepo(writeDB)
	ctx := context.Background()

	cat, err := categories.Create(ctx, &domain.CreateCategoryRequest{
		Name: "Food", Type: domain.CategoryExpense,
	})
	require.NoError(t, err)

	b, err := repo.Create(ctx, &domain.CreateBudgetRequest{
		CategoryID: cat.ID, Amount: 40_000, Month: 8, Year: 2026,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 40_000, b.Amount)

	// Second budget for the same category and period conflicts.
	_, err = repo.Create(ctx, &domain.CreateBudgetRequest{
		CategoryID: cat.ID, Amount: 1, Month: 8, Year: 2026,
	})
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)

	amount := int64(45_000)
	updated, err := repo.Update(ctx, b.ID, &domain.UpdateBudgetRequest{Amount: &amount})
	require.NoError(t, err)
	assert.EqualValues(t, 45_000, updated.Amount)

	listed, err := repo.List(ctx, &domain.BudgetFilters{Month: 8, Year: 2026})
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	other, err := repo.List(ctx, &domain.BudgetFilters{Month: 9, Year: 2026})
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, repo.Delete(ctx, b.ID))
	var nf *domain.NotFoundError
	_, err = repo.GetByID(ctx, b.ID)
	assert.ErrorAs(t, err, &nf)
}

func TestBudgetRepo_Summary(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	users := NewUserRepo(writeDB)
	accounts := NewAccountRepo(writeDB)
	categories := NewCategoryRepo(writeDB)
	txns := NewTransactionRepo(writeDB)
	repo := NewBudgetRepo(writeDB)
	ctx := context.Background()

	u := createTestUser(t, users, "budget@example.com", access.RoleMember)
	a := createTestAccount(t, accounts, u.ID, 0)
	cat, err := categories.Create(ctx, &domain.CreateCategoryRequest{
		Name: "Transport", Type: domain.CategoryExpense,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.CreateBudgetRequest{
		CategoryID: cat.ID, Amount: 10_000, Month: 8, Year: 2026,
	})
	require.NoError(t, err)

	for _, date := range []string{"2026-08-03", "2026-08-17"} {
		_, err = txns.Create(ctx, u.ID, &domain.CreateTransactionRequest{
			AccountID: a.ID, CategoryID: cat.ID, Amount: -2_500,
			Type: domain.TransactionExpense, Date: date,
		})
		require.NoError(t, err)
	}
	// Outside the period, must not count.
	_, err = txns.Create(ctx, u.ID, &domain.CreateTransactionRequest{
		AccountID: a.ID, CategoryID: cat.ID, Amount: -9_999,
		Type: domain.TransactionExpense, Date: "2026-07-31",
	})
	require.NoError(t, err)

	summaries, err := repo.Summary(ctx, 8, 2026)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.EqualValues(t, 10_000, summaries[0].BudgetAmount)
	assert.EqualValues(t, 5_000, summaries[0].ActualAmount)
	assert.EqualValues(t, 5_000, summaries[0].Remaining)
}

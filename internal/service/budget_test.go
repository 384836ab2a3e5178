package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asilingas/fambudg/internal/domain"
)

func TestBudgetService_CreateRequiresExistingCategory(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()

	_, err := f.budgetSvc.Create(ctx, &domain.CreateBudgetRequest{
		CategoryID: "missing", Amount: 100_00, Month: 8, Year: 2026,
	})
	var nf *domain.NotFoundError
	assert.ErrorAs(t, err, &nf)

	groceries := f.seedCategory(t, "Groceries", domain.CategoryExpense)
	b, err := f.budgetSvc.Create(ctx, &domain.CreateBudgetRequest{
		CategoryID: groceries.ID, Amount: 100_00, Month: 8, Year: 2026,
	})
	require.NoError(t, err)
	assert.Equal(t, groceries.ID, b.CategoryID)
}

func TestBudgetService_SummaryAgainstActuals(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()
	account := f.seedAccount(t, f.member.ID, 500_00)
	groceries := f.seedCategory(t, "Groceries", domain.CategoryExpense)

	_, err := f.budgetSvc.Create(ctx, &domain.CreateBudgetRequest{
		CategoryID: groceries.ID, Amount: 100_00, Month: 8, Year: 2026,
	})
	require.NoError(t, err)

	_, err = f.txnSvc.Create(ctx, f.member.ID, &domain.CreateTransactionRequest{
		AccountID:  account.ID,
		CategoryID: groceries.ID,
		Amount:     -60_00,
		Type:       domain.TransactionExpense,
		Date:       "2026-08-05",
	})
	require.NoError(t, err)

	summaries, err := f.budgetSvc.Summary(ctx, 8, 2026)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(100_00), summaries[0].BudgetAmount)
	assert.Equal(t, int64(60_00), summaries[0].ActualAmount)
	assert.Equal(t, int64(40_00), summaries[0].Remaining)
}

func TestBudgetService_SummaryMonthValidation(t *testing.T) {
	f := setupServices(t)
	_, err := f.budgetSvc.Summary(context.Background(), 13, 2026)
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}

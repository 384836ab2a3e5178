package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asilingas/fambudg/internal/domain"
)

func TestTransactionService_CreateAdjustsBalance(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()
	account := f.seedAccount(t, f.member.ID, 50_000)
	groceries := f.seedCategory(t, "Groceries", domain.CategoryExpense)

	_, err := f.txnSvc.Create(ctx, f.member.ID, &domain.CreateTransactionRequest{
		AccountID:  account.ID,
		CategoryID: groceries.ID,
		Amount:     -12_50,
		Type:       domain.TransactionExpense,
		Date:       "2026-08-10",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50_000-12_50), f.balance(t, account.ID))
}

func TestTransactionService_TransferMovesBothBalances(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()
	from := f.seedAccount(t, f.member.ID, 100_00)
	to := f.seedAccount(t, f.member.ID, 0)

	txn, err := f.txnSvc.Transfer(ctx, f.member.ID, &domain.TransferRequest{
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		Amount:        40_00,
		Description:   "savings top-up",
		Date:          "2026-08-15",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TransactionTransfer, txn.Type)
	assert.Equal(t, int64(-40_00), txn.Amount)
	assert.True(t, txn.IsShared)
	assert.Empty(t, txn.CategoryID)
	assert.Equal(t, int64(60_00), f.balance(t, from.ID))
	assert.Equal(t, int64(40_00), f.balance(t, to.ID))
}

func TestTransactionService_TransferSameAccountRejected(t *testing.T) {
	f := setupServices(t)
	account := f.seedAccount(t, f.member.ID, 100_00)

	_, err := f.txnSvc.Transfer(context.Background(), f.member.ID, &domain.TransferRequest{
		FromAccountID: account.ID,
		ToAccountID:   account.ID,
		Amount:        10_00,
		Date:          "2026-08-15",
	})
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestTransactionService_UpdateRebalances(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()
	account := f.seedAccount(t, f.member.ID, 50_000)
	groceries := f.seedCategory(t, "Groceries", domain.CategoryExpense)

	txn, err := f.txnSvc.Create(ctx, f.member.ID, &domain.CreateTransactionRequest{
		AccountID:  account.ID,
		CategoryID: groceries.ID,
		Amount:     -10_00,
		Type:       domain.TransactionExpense,
		Date:       "2026-08-10",
	})
	require.NoError(t, err)

	newAmount := int64(-25_00)
	_, err = f.txnSvc.Update(ctx, f.member.Principal(), txn.ID, &domain.UpdateTransactionRequest{
		Amount: &newAmount,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50_000-25_00), f.balance(t, account.ID))
}

func TestTransactionService_DeleteReversesBalance(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()
	account := f.seedAccount(t, f.member.ID, 50_000)
	groceries := f.seedCategory(t, "Groceries", domain.CategoryExpense)

	txn, err := f.txnSvc.Create(ctx, f.member.ID, &domain.CreateTransactionRequest{
		AccountID:  account.ID,
		CategoryID: groceries.ID,
		Amount:     -30_00,
		Type:       domain.TransactionExpense,
		Date:       "2026-08-11",
	})
	require.NoError(t, err)

	require.NoError(t, f.txnSvc.Delete(ctx, f.member.Principal(), txn.ID))
	assert.Equal(t, int64(50_000), f.balance(t, account.ID))
}

func TestTransactionService_OwnershipEnforced(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()
	account := f.seedAccount(t, f.member.ID, 50_000)
	groceries := f.seedCategory(t, "Groceries", domain.CategoryExpense)

	txn, err := f.txnSvc.Create(ctx, f.member.ID, &domain.CreateTransactionRequest{
		AccountID:  account.ID,
		CategoryID: groceries.ID,
		Amount:     -5_00,
		Type:       domain.TransactionExpense,
		Date:       "2026-08-12",
	})
	require.NoError(t, err)

	_, err = f.txnSvc.Get(ctx, f.child.Principal(), txn.ID)
	var denied *domain.AccessDeniedError
	assert.ErrorAs(t, err, &denied)

	// Admins see everything.
	_, err = f.txnSvc.Get(ctx, f.admin.Principal(), txn.ID)
	assert.NoError(t, err)
}

func TestTransactionService_GenerateRecurring(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()
	account := f.seedAccount(t, f.member.ID, 0)
	rent := f.seedCategory(t, "Rent", domain.CategoryExpense)

	_, err := f.txnSvc.Create(ctx, f.member.ID, &domain.CreateTransactionRequest{
		AccountID:     account.ID,
		CategoryID:    rent.ID,
		Amount:        -800_00,
		Type:          domain.TransactionExpense,
		Description:   "Monthly rent",
		Date:          "2026-05-01",
		IsRecurring:   true,
		RecurringRule: &domain.RecurringRule{Frequency: domain.FrequencyMonthly, Day: 1},
	})
	require.NoError(t, err)

	upTo := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	resp, err := f.txnSvc.GenerateRecurring(ctx, f.member.ID, upTo)
	require.NoError(t, err)

	// June, July, August occurrences.
	assert.Equal(t, 1, resp.Templates)
	assert.Equal(t, 3, resp.Generated)
	assert.Empty(t, resp.Errors)

	// A second run picks up where the first left off.
	resp, err = f.txnSvc.GenerateRecurring(ctx, f.member.ID, upTo)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Generated)
}

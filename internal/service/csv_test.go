package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asilingas/fambudg/internal/domain"
)

func TestCSVService_ImportCreatesTransactions(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()
	account := f.seedAccount(t, f.member.ID, 100_00)
	groceries := f.seedCategory(t, "Groceries", domain.CategoryExpense)

	input := strings.Join([]string{
		"date,amount,type,description,category_id,account_id,is_shared",
		"2026-08-01,-1500,expense,weekly shop," + groceries.ID + "," + account.ID + ",true",
		"2026-08-02,-250,expense,coffee," + groceries.ID + "," + account.ID + ",false",
		"not-a-date,-100,expense,broken," + groceries.ID + "," + account.ID + ",false",
	}, "\n")

	result, err := f.csvSvc.Import(ctx, f.member.ID, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "line 4")

	// Imported rows go through normal balance maintenance.
	assert.Equal(t, int64(100_00-15_00-2_50), f.balance(t, account.ID))
}

func TestCSVService_ImportRejectsBadHeader(t *testing.T) {
	f := setupServices(t)

	_, err := f.csvSvc.Import(context.Background(), f.member.ID,
		strings.NewReader("foo,bar\n1,2\n"))
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestCSVService_ExportRoundTrip(t *testing.T) {
	f := setupServices(t)
	ctx := context.Background()
	account := f.seedAccount(t, f.member.ID, 100_00)
	groceries := f.seedCategory(t, "Groceries", domain.CategoryExpense)

	_, err := f.txnSvc.Create(ctx, f.member.ID, &domain.CreateTransactionRequest{
		AccountID:   account.ID,
		CategoryID:  groceries.ID,
		Amount:      -7_77,
		Type:        domain.TransactionExpense,
		Description: "bread",
		Date:        "2026-08-20",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.csvSvc.Export(ctx, f.member.Principal(), nil, &buf))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "date,amount,type,description,category_id,account_id,is_shared", lines[0])
	assert.Contains(t, lines[1], "2026-08-20,-777,expense,bread")
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	internaldb "github.com/asilingas/fambudg/internal/db"
	"github.com/asilingas/fambudg/internal/db/repository"
	"github.com/asilingas/fambudg/internal/domain"
	"github.com/asilingas/fambudg/pkg/access"
)

// svcFixture wires every service over a real temp-dir SQLite database.
type svcFixture struct {
	users      *repository.UserRepo
	accounts   *repository.AccountRepo
	categories *repository.CategoryRepo

	auth        *AuthService
	userSvc     *UserService
	accountSvc  *AccountService
	categorySvc *CategoryService
	txnSvc      *TransactionService
	budgetSvc   *BudgetService
	goalSvc     *SavingGoalService
	billSvc     *BillReminderService
	allowSvc    *AllowanceService
	reportSvc   *ReportService
	csvSvc      *CSVService

	admin  *domain.User
	member *domain.User
	child  *domain.User
}

func setupServices(t *testing.T) *svcFixture {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)

	f := &svcFixture{
		users:      repository.NewUserRepo(writeDB),
		accounts:   repository.NewAccountRepo(writeDB),
		categories: repository.NewCategoryRepo(writeDB),
	}
	txns := repository.NewTransactionRepo(writeDB)
	budgets := repository.NewBudgetRepo(writeDB)
	goals := repository.NewSavingGoalRepo(writeDB)
	bills := repository.NewBillReminderRepo(writeDB)
	allowances := repository.NewAllowanceRepo(writeDB)
	reports := repository.NewReportRepo(writeDB)

	f.auth = NewAuthService(f.users, "test-secret", 0)
	f.userSvc = NewUserService(f.users)
	f.accountSvc = NewAccountService(f.accounts)
	f.categorySvc = NewCategoryService(f.categories)
	f.txnSvc = NewTransactionService(txns, f.accounts)
	f.budgetSvc = NewBudgetService(budgets, f.categories)
	f.goalSvc = NewSavingGoalService(goals)
	f.billSvc = NewBillReminderService(bills, f.txnSvc)
	f.allowSvc = NewAllowanceService(allowances, f.users)
	f.reportSvc = NewReportService(reports, f.accounts, txns)
	f.csvSvc = NewCSVService(f.txnSvc)

	f.admin = f.seedUser(t, "admin@family.test", access.RoleAdmin)
	f.member = f.seedUser(t, "member@family.test", access.RoleMember)
	f.child = f.seedUser(t, "child@family.test", access.RoleChild)
	return f
}

func (f *svcFixture) seedUser(t *testing.T, email string, role access.Role) *domain.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), &domain.User{
		Email:        email,
		Name:         "Test " + string(role),
		Role:         role,
		PasswordHash: "x",
	})
	require.NoError(t, err)
	return u
}

func (f *svcFixture) seedAccount(t *testing.T, ownerID string, balance int64) *domain.Account {
	t.Helper()
	a, err := f.accounts.Create(context.Background(), ownerID, &domain.CreateAccountRequest{
		Name:    "Checking " + ownerID[:8],
		Type:    domain.AccountChecking,
		Balance: balance,
	})
	require.NoError(t, err)
	return a
}

func (f *svcFixture) seedCategory(t *testing.T, name string, typ domain.CategoryType) *domain.Category {
	t.Helper()
	c, err := f.categories.Create(context.Background(), &domain.CreateCategoryRequest{
		Name: name,
		Type: typ,
	})
	require.NoError(t, err)
	return c
}

func (f *svcFixture) balance(t *testing.T, accountID string) int64 {
	t.Helper()
	a, err := f.accounts.GetByID(context.Background(), accountID)
	require.NoError(t, err)
	return a.Balance
}

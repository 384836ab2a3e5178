package domain

import (
	"context"
	"time"
)

// UserRepository provides CRUD operations for family members.
type UserRepository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, id string, req *UpdateUserRequest) (*User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// AccountRepository provides CRUD operations for money accounts.
type AccountRepository interface {
	Create(ctx context.Context, ownerID string, req *CreateAccountRequest) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Account, error)
	Update(ctx context.Context, id string, req *UpdateAccountRequest) (*Account, error)
	Delete(ctx context.Context, id string) error
	UpdateBalance(ctx context.Context, id string, delta int64) error
}

// CategoryRepository provides CRUD operations for shared categories.
type CategoryRepository interface {
	Create(ctx context.Context, req *CreateCategoryRequest) (*Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, id string, req *UpdateCategoryRequest) (*Category, error)
	Delete(ctx context.Context, id string) error
	HasTransactions(ctx context.Context, id string) (bool, error)
}

// TransactionRepository provides CRUD and query operations for ledger
// entries, including recurring templates.
type TransactionRepository interface {
	Create(ctx context.Context, userID string, req *CreateTransactionRequest) (*Transaction, error)
	GetByID(ctx context.Context, id string) (*Transaction, error)
	ListByUser(ctx context.Context, userID string, filters *TransactionFilters) ([]*Transaction, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]*Transaction, error)
	Update(ctx context.Context, id string, req *UpdateTransactionRequest) (*Transaction, error)
	Delete(ctx context.Context, id string) error
	FindRecurring(ctx context.Context, userID string) ([]*Transaction, error)
	FindLatestByTemplate(ctx context.Context, userID, accountID, categoryID, description string) (*Transaction, error)
	Search(ctx context.Context, filters *SearchFilters) (*SearchResult, error)
}

// BudgetRepository provides CRUD operations for monthly category budgets.
type BudgetRepository interface {
	Create(ctx context.Context, req *CreateBudgetRequest) (*Budget, error)
	GetByID(ctx context.Context, id string) (*Budget, error)
	List(ctx context.Context, filters *BudgetFilters) ([]*Budget, error)
	Update(ctx context.Context, id string, req *UpdateBudgetRequest) (*Budget, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, month, year int) ([]*BudgetSummary, error)
}

// SavingGoalRepository provides CRUD operations for saving goals.
type SavingGoalRepository interface {
	Create(ctx context.Context, req *CreateSavingGoalRequest) (*SavingGoal, error)
	GetByID(ctx context.Context, id string) (*SavingGoal, error)
	List(ctx context.Context) ([]*SavingGoal, error)
	Update(ctx context.Context, id string, req *UpdateSavingGoalRequest) (*SavingGoal, error)
	Delete(ctx context.Context, id string) error
	AddContribution(ctx context.Context, id string, amount int64) (*SavingGoal, error)
}

// BillReminderRepository provides CRUD operations for bill reminders.
type BillReminderRepository interface {
	Create(ctx context.Context, req *CreateBillReminderRequest) (*BillReminder, error)
	GetByID(ctx context.Context, id string) (*BillReminder, error)
	List(ctx context.Context) ([]*BillReminder, error)
	ListUpcoming(ctx context.Context, within time.Duration) ([]*BillReminder, error)
	Update(ctx context.Context, id string, req *UpdateBillReminderRequest) (*BillReminder, error)
	Delete(ctx context.Context, id string) error
	AdvanceNextDueDate(ctx context.Context, id string, next time.Time) error
}

// AllowanceRepository provides CRUD operations for allowances. Spent
// totals come from the transactions table.
type AllowanceRepository interface {
	Create(ctx context.Context, req *CreateAllowanceRequest) (*Allowance, error)
	GetByID(ctx context.Context, id string) (*Allowance, error)
	GetByUserID(ctx context.Context, userID string) (*Allowance, error)
	List(ctx context.Context) ([]*Allowance, error)
	Update(ctx context.Context, id string, req *UpdateAllowanceRequest) (*Allowance, error)
	Delete(ctx context.Context, id string) error
	SpentSince(ctx context.Context, userID string, since time.Time) (int64, error)
}

// ReportRepository provides aggregate reporting queries.
type ReportRepository interface {
	MonthSummary(ctx context.Context, month, year int, userID string) (*MonthSummary, error)
	CategorySpending(ctx context.Context, start, end time.Time, userID string) ([]*CategorySpending, error)
	MemberSpending(ctx context.Context, start, end time.Time) ([]*MemberSpending, error)
	Trend(ctx context.Context, months int, userID string) ([]*TrendPoint, error)
}

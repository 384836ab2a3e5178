// Package app provides application-level wiring and dependency
// injection for the budgeting server.
package app

import (
	"database/sql"
	"log/slog"

	"github.com/asilingas/fambudg/internal/config"
	"github.com/asilingas/fambudg/internal/db/repository"
	"github.com/asilingas/fambudg/internal/domain"
	"github.com/asilingas/fambudg/internal/service"
)

// Deps holds the external dependencies that main() must provide:
// database handles, config, and the logger.
type Deps struct {
	Cfg     *config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Logger  *slog.Logger
}

// Services groups all service pointers the API handler and the
// scheduler need.
type Services struct {
	Auth        *service.AuthService
	User        *service.UserService
	Account     *service.AccountService
	Category    *service.CategoryService
	Transaction *service.TransactionService
	Budget      *service.BudgetService
	SavingGoal  *service.SavingGoalService
	BillRemind  *service.BillReminderService
	Allowance   *service.AllowanceService
	Report      *service.ReportService
	CSV         *service.CSVService
}

// App holds the fully-wired application plus the user repository the
// auth middleware resolves principals with.
type App struct {
	Services  Services
	Users     domain.UserRepository
	Scheduler *service.Scheduler
}

// New wires all repositories and services from the provided deps.
func New(deps Deps) *App {
	// Write-pool repositories; everything here mutates.
	users := repository.NewUserRepo(deps.WriteDB)
	accounts := repository.NewAccountRepo(deps.WriteDB)
	categories := repository.NewCategoryRepo(deps.WriteDB)
	txns := repository.NewTransactionRepo(deps.WriteDB)
	budgets := repository.NewBudgetRepo(deps.WriteDB)
	goals := repository.NewSavingGoalRepo(deps.WriteDB)
	bills := repository.NewBillReminderRepo(deps.WriteDB)
	allowances := repository.NewAllowanceRepo(deps.WriteDB)

	// Read-pool repository: reporting is SELECT-only.
	reports := repository.NewReportRepo(deps.ReadDB)

	txnSvc := service.NewTransactionService(txns, accounts)

	svcs := Services{
		Auth:        service.NewAuthService(users, deps.Cfg.Auth.JWTSecret, deps.Cfg.Auth.TokenTTL),
		User:        service.NewUserService(users),
		Account:     service.NewAccountService(accounts),
		Category:    service.NewCategoryService(categories),
		Transaction: txnSvc,
		Budget:      service.NewBudgetService(budgets, categories),
		SavingGoal:  service.NewSavingGoalService(goals),
		BillRemind:  service.NewBillReminderService(bills, txnSvc),
		Allowance:   service.NewAllowanceService(allowances, users),
		Report:      service.NewReportService(reports, accounts, txns),
		CSV:         service.NewCSVService(txnSvc),
	}

	return &App{
		Services:  svcs,
		Users:     users,
		Scheduler: service.NewScheduler(txnSvc, users, deps.Logger.With("component", "scheduler")),
	}
}

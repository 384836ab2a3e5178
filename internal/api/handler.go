// Package api provides the HTTP handlers and router for the family
// budgeting REST API.
package api

import (
	"net/http"

	"github.com/asilingas/fambudg/internal/domain"
	"github.com/asilingas/fambudg/internal/service"
	"github.com/asilingas/fambudg/pkg/access"
)

// Handler implements the REST API over the service layer.
type Handler struct {
	auth         *service.AuthService
	users        *service.UserService
	accounts     *service.AccountService
	categories   *service.CategoryService
	transactions *service.TransactionService
	budgets      *service.BudgetService
	goals        *service.SavingGoalService
	bills        *service.BillReminderService
	allowances   *service.AllowanceService
	reports      *service.ReportService
	csv          *service.CSVService
}

// NewHandler creates a new Handler with all required service dependencies.
func NewHandler(
	auth *service.AuthService,
	users *service.UserService,
	accounts *service.AccountService,
	categories *service.CategoryService,
	transactions *service.TransactionService,
	budgets *service.BudgetService,
	goals *service.SavingGoalService,
	bills *service.BillReminderService,
	allowances *service.AllowanceService,
	reports *service.ReportService,
	csv *service.CSVService,
) *Handler {
	return &Handler{
		auth:         auth,
		users:        users,
		accounts:     accounts,
		categories:   categories,
		transactions: transactions,
		budgets:      budgets,
		goals:        goals,
		bills:        bills,
		allowances:   allowances,
		reports:      reports,
		csv:          csv,
	}
}

// principal returns the authenticated principal the auth middleware
// stored on the request context.
func principal(r *http.Request) access.Principal {
	p, _ := domain.PrincipalFromContext(r.Context())
	return p
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/asilingas/fambudg/internal/config"
	"github.com/asilingas/fambudg/internal/domain"
	"github.com/asilingas/fambudg/internal/middleware"
	"github.com/asilingas/fambudg/pkg/access"
)

// NewRouter assembles the chi router. The three authenticated groups
// mirror the central route table in pkg/access: any role, admin+member,
// and admin only.
func NewRouter(cfg *config.Config, h *Handler, validator middleware.JWTValidator, users domain.UserRepository) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)

		// Any authenticated role.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(validator, users))

			r.Get("/auth/me", h.Me)

			r.Get("/accounts", h.ListAccounts)
			r.Post("/accounts", h.CreateAccount)
			r.Get("/accounts/{id}", h.GetAccount)
			r.Put("/accounts/{id}", h.UpdateAccount)
			r.Delete("/accounts/{id}", h.DeleteAccount)

			r.Get("/categories", h.ListCategories)

			r.Get("/transactions", h.ListTransactions)
			r.Post("/transactions", h.CreateTransaction)
			r.Get("/transactions/{id}", h.GetTransaction)
			r.Put("/transactions/{id}", h.UpdateTransaction)
			r.Delete("/transactions/{id}", h.DeleteTransaction)

			r.Get("/reports/dashboard", h.Dashboard)
			r.Get("/reports/monthly", h.MonthlyReport)
			r.Get("/reports/by-category", h.ByCategoryReport)
			r.Get("/reports/trends", h.TrendsReport)
			r.Get("/search", h.Search)

			r.Get("/allowances", h.ListAllowances)
			r.Get("/allowances/{id}", h.GetAllowance)
		})

		// Admin and member.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(validator, users))
			r.Use(middleware.RequireRole(access.RoleAdmin, access.RoleMember))

			r.Post("/categories", h.CreateCategory)

			r.Get("/budgets", h.ListBudgets)
			r.Get("/budgets/summary", h.BudgetSummary)

			r.Get("/saving-goals", h.ListSavingGoals)

			r.Get("/bill-reminders", h.ListBillReminders)
			r.Get("/bill-reminders/upcoming", h.ListUpcomingBills)
			r.Post("/bill-reminders/{id}/pay", h.PayBill)

			r.Post("/transfers", h.Transfer)
			r.Post("/transactions/generate-recurring", h.GenerateRecurring)

			r.Post("/import/csv", h.ImportCSV)
			r.Get("/export/csv", h.ExportCSV)
		})

		// Admin only.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(validator, users))
			r.Use(middleware.RequireRole(access.RoleAdmin))

			r.Get("/users", h.ListUsers)
			r.Post("/users", h.CreateUser)
			r.Get("/users/{id}", h.GetUser)
			r.Put("/users/{id}", h.UpdateUser)
			r.Delete("/users/{id}", h.DeleteUser)

			r.Put("/categories/{id}", h.UpdateCategory)
			r.Delete("/categories/{id}", h.DeleteCategory)

			r.Post("/budgets", h.CreateBudget)
			r.Put("/budgets/{id}", h.UpdateBudget)
			r.Delete("/budgets/{id}", h.DeleteBudget)

			r.Post("/saving-goals", h.CreateSavingGoal)
			r.Put("/saving-goals/{id}", h.UpdateSavingGoal)
			r.Delete("/saving-goals/{id}", h.DeleteSavingGoal)
			r.Post("/saving-goals/{id}/contribute", h.ContributeSavingGoal)

			r.Post("/bill-reminders", h.CreateBillReminder)
			r.Put("/bill-reminders/{id}", h.UpdateBillReminder)
			r.Delete("/bill-reminders/{id}", h.DeleteBillReminder)

			r.Get("/reports/by-member", h.ByMemberReport)

			r.Post("/allowances", h.CreateAllowance)
			r.Put("/allowances/{id}", h.UpdateAllowance)
			r.Delete("/allowances/{id}", h.DeleteAllowance)
		})
	})

	return r
}

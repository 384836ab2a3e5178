package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/asilingas/fambudg/internal/domain"
)

func (h *Handler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	filters := &domain.BudgetFilters{
		Month: queryInt(r, "month", 0),
		Year:  queryInt(r, "year", 0),
	}
	budgets, err := h.budgets.List(r.Context(), filters)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, budgets)
}

func (h *Handler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	budget, err := h.budgets.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, budget)
}

func (h *Handler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	budget, err := h.budgets.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, budget)
}

func (h *Handler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	if err := h.budgets.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BudgetSummary handles GET /api/budgets/summary. Month and year
// default to the current month.
func (h *Handler) BudgetSummary(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	month := queryInt(r, "month", int(now.Month()))
	year := queryInt(r, "year", now.Year())

	summaries, err := h.budgets.Summary(r.Context(), month, year)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summaries)
}

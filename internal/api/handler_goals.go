package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asilingas/fambudg/internal/domain"
)

func (h *Handler) ListSavingGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goals.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, goals)
}

func (h *Handler) CreateSavingGoal(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSavingGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	goal, err := h.goals.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, goal)
}

func (h *Handler) UpdateSavingGoal(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateSavingGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	goal, err := h.goals.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, goal)
}

func (h *Handler) DeleteSavingGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.goals.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ContributeSavingGoal handles POST /api/saving-goals/{id}/contribute.
func (h *Handler) ContributeSavingGoal(w http.ResponseWriter, r *http.Request) {
	var req domain.ContributeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	goal, err := h.goals.Contribute(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, goal)
}

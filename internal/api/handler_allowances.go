package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asilingas/fambudg/internal/domain"
)

func (h *Handler) ListAllowances(w http.ResponseWriter, r *http.Request) {
	allowances, err := h.allowances.List(r.Context(), principal(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, allowances)
}

func (h *Handler) GetAllowance(w http.ResponseWriter, r *http.Request) {
	allowance, err := h.allowances.Get(r.Context(), principal(r), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, allowance)
}

func (h *Handler) CreateAllowance(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAllowanceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	allowance, err := h.allowances.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, allowance)
}

func (h *Handler) UpdateAllowance(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateAllowanceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	allowance, err := h.allowances.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, allowance)
}

func (h *Handler) DeleteAllowance(w http.ResponseWriter, r *http.Request) {
	if err := h.allowances.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

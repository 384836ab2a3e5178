package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/asilingas/fambudg/internal/domain"
)

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := &domain.TransactionFilters{
		AccountID:  q.Get("account_id"),
		CategoryID: q.Get("category_id"),
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
		Type:       q.Get("type"),
	}
	txns, err := h.transactions.List(r.Context(), principal(r), filters)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, txns)
}

func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	txn, err := h.transactions.Get(r.Context(), principal(r), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, txn)
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	txn, err := h.transactions.Create(r.Context(), principal(r).ID, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, txn)
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	txn, err := h.transactions.Update(r.Context(), principal(r), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, txn)
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.transactions.Delete(r.Context(), principal(r), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Transfer handles POST /api/transfers.
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req domain.TransferRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	txn, err := h.transactions.Transfer(r.Context(), principal(r).ID, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, txn)
}

// GenerateRecurring handles POST /api/transactions/generate-recurring.
// An optional up_to query parameter (YYYY-MM-DD) bounds the run; it
// defaults to today.
func (h *Handler) GenerateRecurring(w http.ResponseWriter, r *http.Request) {
	upTo := time.Now().UTC()
	if raw := r.URL.Query().Get("up_to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(w, domain.ErrValidation("up_to must be YYYY-MM-DD"))
			return
		}
		upTo = parsed
	}
	resp, err := h.transactions.GenerateRecurring(r.Context(), principal(r).ID, upTo)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// Search handles GET /api/search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := &domain.SearchFilters{
		Description: q.Get("q"),
		StartDate:   q.Get("start_date"),
		EndDate:     q.Get("end_date"),
		CategoryID:  q.Get("category_id"),
		AccountID:   q.Get("account_id"),
		MinAmount:   queryInt64Ptr(r, "min_amount"),
		MaxAmount:   queryInt64Ptr(r, "max_amount"),
	}
	if tags, ok := q["tag"]; ok {
		filters.Tags = tags
	}
	result, err := h.reports.Search(r.Context(), principal(r), filters)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

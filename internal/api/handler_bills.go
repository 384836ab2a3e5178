package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/asilingas/fambudg/internal/domain"
)

func (h *Handler) ListBillReminders(w http.ResponseWriter, r *http.Request) {
	bills, err := h.bills.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bills)
}

// ListUpcomingBills handles GET /api/bill-reminders/upcoming. An
// optional days parameter sets the window, defaulting to 30.
func (h *Handler) ListUpcomingBills(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days", 30)
	bills, err := h.bills.ListUpcoming(r.Context(), time.Duration(days)*24*time.Hour)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bills)
}

func (h *Handler) CreateBillReminder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBillReminderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	bill, err := h.bills.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, bill)
}

func (h *Handler) UpdateBillReminder(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateBillReminderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	bill, err := h.bills.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bill)
}

func (h *Handler) DeleteBillReminder(w http.ResponseWriter, r *http.Request) {
	if err := h.bills.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PayBill handles POST /api/bill-reminders/{id}/pay.
func (h *Handler) PayBill(w http.ResponseWriter, r *http.Request) {
	var req domain.PayBillRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	txn, err := h.bills.Pay(r.Context(), principal(r).ID, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, txn)
}

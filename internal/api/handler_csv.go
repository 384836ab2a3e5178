package api

import (
	"net/http"

	"github.com/asilingas/fambudg/internal/domain"
)

// ImportCSV handles POST /api/import/csv. The request body is the raw
// CSV document.
func (h *Handler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	result, err := h.csv.Import(r.Context(), principal(r).ID, r.Body)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// ExportCSV handles GET /api/export/csv, streaming the caller's visible
// transactions.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := &domain.TransactionFilters{
		AccountID:  q.Get("account_id"),
		CategoryID: q.Get("category_id"),
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	// Errors after the first write cannot change the status line.
	if err := h.csv.Export(r.Context(), principal(r), filters, w); err != nil {
		respondError(w, err)
	}
}

package api

import (
	"net/http"
	"time"

	"github.com/asilingas/fambudg/internal/domain"
)

// Dashboard handles GET /api/reports/dashboard.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.reports.Dashboard(r.Context(), principal(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dash)
}

// MonthlyReport handles GET /api/reports/monthly, defaulting to the
// current month.
func (h *Handler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	month := queryInt(r, "month", int(now.Month()))
	year := queryInt(r, "year", now.Year())

	summary, err := h.reports.Monthly(r.Context(), principal(r), month, year)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// ByCategoryReport handles GET /api/reports/by-category.
func (h *Handler) ByCategoryReport(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reports.ByCategory(r.Context(), principal(r), reportFilters(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// ByMemberReport handles GET /api/reports/by-member (admin only).
func (h *Handler) ByMemberReport(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reports.ByMember(r.Context(), reportFilters(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

// TrendsReport handles GET /api/reports/trends with an optional months
// window, defaulting to 6.
func (h *Handler) TrendsReport(w http.ResponseWriter, r *http.Request) {
	points, err := h.reports.Trends(r.Context(), principal(r), queryInt(r, "months", 6))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, points)
}

func reportFilters(r *http.Request) *domain.ReportFilters {
	q := r.URL.Query()
	return &domain.ReportFilters{
		Month:     queryInt(r, "month", 0),
		Year:      queryInt(r, "year", 0),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
}

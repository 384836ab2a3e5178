package domain

import "time"

// Dashboard is the landing-page summary for a signed-in user.
type Dashboard struct {
	Accounts           []*Account     `json:"accounts"`
	MonthSummary       *MonthSummary  `json:"monthSummary"`
	RecentTransactions []*Transaction `json:"recentTransactions"`
}

// MonthSummary totals one calendar month. Income is positive cents,
// expense is the absolute value of spending.
type MonthSummary struct {
	Month        int   `json:"month"`
	Year         int   `json:"year"`
	TotalIncome  int64 `json:"totalIncome"`
	TotalExpense int64 `json:"totalExpense"`
	Net          int64 `json:"net"`
}

// CategorySpending is one slice of the by-category breakdown.
type CategorySpending struct {
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	TotalAmount  int64   `json:"totalAmount"`
	Percentage   float64 `json:"percentage"`
}

// MemberSpending is one family member's totals, admin-only reporting.
type MemberSpending struct {
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	TotalExpense int64  `json:"totalExpense"`
	TotalIncome  int64  `json:"totalIncome"`
	Net          int64  `json:"net"`
}

// TrendPoint is one month in an income/expense trend series.
type TrendPoint struct {
	Month        int   `json:"month"`
	Year         int   `json:"year"`
	TotalIncome  int64 `json:"totalIncome"`
	TotalExpense int64 `json:"totalExpense"`
	Net          int64 `json:"net"`
}

// ReportFilters scopes a report to a period and optionally a member.
type ReportFilters struct {
	Month     int
	Year      int
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	UserID    string
}

// DateRange expands Month/Year to the first and last day of the month.
func (f *ReportFilters) DateRange() (time.Time, time.Time) {
	start := time.Date(f.Year, time.Month(f.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// SearchFilters is the full-text and attribute search form.
type SearchFilters struct {
	Description string
	MinAmount   *int64
	MaxAmount   *int64
	StartDate   string
	EndDate     string
	CategoryID  string
	AccountID   string
	Tags        []string
	UserID      string
}

// SearchResult pages matched transactions with a total count.
type SearchResult struct {
	Transactions []*Transaction `json:"transactions"`
	TotalCount   int            `json:"totalCount"`
}

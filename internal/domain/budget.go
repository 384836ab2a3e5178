package domain

import "time"

// Budget caps spending for a category in a given month. Amounts are
// integer cents.
type Budget struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"categoryId"`
	Amount     int64     `json:"amount"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateBudgetRequest sets a monthly category limit.
type CreateBudgetRequest struct {
	CategoryID string `json:"categoryId"`
	Amount     int64  `json:"amount"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

// Validate checks the creation payload.
func (r CreateBudgetRequest) Validate() error {
	if r.CategoryID == "" {
		return ErrValidation("categoryId is required")
	}
	if r.Amount <= 0 {
		return ErrValidation("amount must be positive")
	}
	if r.Month < 1 || r.Month > 12 {
		return ErrValidation("month must be between 1 and 12")
	}
	if r.Year < 2000 {
		return ErrValidation("year must be 2000 or later")
	}
	return nil
}

// UpdateBudgetRequest changes the limit only; period and category are
// fixed at creation.
type UpdateBudgetRequest struct {
	Amount *int64 `json:"amount,omitempty"`
}

// BudgetSummary joins a budget with actual spending in its period.
type BudgetSummary struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	BudgetAmount int64  `json:"budgetAmount"`
	ActualAmount int64  `json:"actualAmount"` // positive = spent
	Remaining    int64  `json:"remaining"`
}

// BudgetFilters narrows budget listings to a period.
type BudgetFilters struct {
	Month int
	Year  int
}

package domain

import "time"

// Allowance is a child's spending budget for a period. Spent and
// Remaining are derived from the child's expense transactions since
// PeriodStart and are filled in on read, not stored.
type Allowance struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Amount      int64     `json:"amount"`
	Spent       int64     `json:"spent"`
	Remaining   int64     `json:"remaining"`
	PeriodStart time.Time `json:"periodStart"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateAllowanceRequest grants an allowance to a user. PeriodStart
// uses YYYY-MM-DD.
type CreateAllowanceRequest struct {
	UserID      string `json:"userId"`
	Amount      int64  `json:"amount"`
	PeriodStart string `json:"periodStart"`
}

// Validate checks the creation payload.
func (r CreateAllowanceRequest) Validate() error {
	if r.UserID == "" {
		return ErrValidation("userId is required")
	}
	if r.Amount <= 0 {
		return ErrValidation("amount must be positive")
	}
	if _, err := time.Parse("2006-01-02", r.PeriodStart); err != nil {
		return ErrValidation("periodStart must be YYYY-MM-DD")
	}
	return nil
}

// UpdateAllowanceRequest carries optional allowance field updates.
type UpdateAllowanceRequest struct {
	Amount      *int64  `json:"amount,omitempty"`
	PeriodStart *string `json:"periodStart,omitempty"`
}

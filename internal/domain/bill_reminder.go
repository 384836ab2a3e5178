package domain

import (
	"time"
)

// BillFrequency is the repeat cadence of a bill.
type BillFrequency string

const (
	BillMonthly   BillFrequency = "monthly"
	BillQuarterly BillFrequency = "quarterly"
	BillYearly    BillFrequency = "yearly"
)

// Valid reports whether f is a known bill frequency.
func (f BillFrequency) Valid() bool {
	switch f {
	case BillMonthly, BillQuarterly, BillYearly:
		return true
	}
	return false
}

// Advance returns the due date one cadence after from. Unknown
// frequencies fall back to monthly.
func (f BillFrequency) Advance(from time.Time) time.Time {
	switch f {
	case BillQuarterly:
		return from.AddDate(0, 3, 0)
	case BillYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

// BillReminder tracks a recurring bill. Paying a bill records an
// expense transaction and advances NextDueDate by one cadence.
type BillReminder struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Amount      int64         `json:"amount"`
	DueDay      int           `json:"dueDay"`
	Frequency   BillFrequency `json:"frequency"`
	CategoryID  *string       `json:"categoryId,omitempty"`
	AccountID   *string       `json:"accountId,omitempty"`
	IsActive    bool          `json:"isActive"`
	NextDueDate time.Time     `json:"nextDueDate"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// CreateBillReminderRequest registers a bill. NextDueDate uses
// YYYY-MM-DD.
type CreateBillReminderRequest struct {
	Name        string        `json:"name"`
	Amount      int64         `json:"amount"`
	DueDay      int           `json:"dueDay"`
	Frequency   BillFrequency `json:"frequency"`
	CategoryID  *string       `json:"categoryId,omitempty"`
	AccountID   *string       `json:"accountId,omitempty"`
	NextDueDate string        `json:"nextDueDate"`
}

// Validate checks the creation payload.
func (r CreateBillReminderRequest) Validate() error {
	if r.Name == "" {
		return ErrValidation("bill name is required")
	}
	if r.Amount <= 0 {
		return ErrValidation("amount must be positive")
	}
	if r.DueDay < 1 || r.DueDay > 31 {
		return ErrValidation("dueDay must be between 1 and 31")
	}
	if !r.Frequency.Valid() {
		return ErrValidation("unknown bill frequency %q", r.Frequency)
	}
	if _, err := time.Parse("2006-01-02", r.NextDueDate); err != nil {
		return ErrValidation("nextDueDate must be YYYY-MM-DD")
	}
	return nil
}

// UpdateBillReminderRequest carries optional bill field updates.
type UpdateBillReminderRequest struct {
	Name       *string        `json:"name,omitempty"`
	Amount     *int64         `json:"amount,omitempty"`
	DueDay     *int           `json:"dueDay,omitempty"`
	Frequency  *BillFrequency `json:"frequency,omitempty"`
	CategoryID *string        `json:"categoryId,omitempty"`
	AccountID  *string        `json:"accountId,omitempty"`
	IsActive   *bool          `json:"isActive,omitempty"`
}

// PayBillRequest pays a bill from an account on a date (YYYY-MM-DD).
type PayBillRequest struct {
	AccountID string `json:"accountId"`
	Date      string `json:"date"`
}

// TransferRequest moves money between two accounts. Amount is positive
// cents; Date uses YYYY-MM-DD.
type TransferRequest struct {
	FromAccountID string `json:"fromAccountId"`
	ToAccountID   string `json:"toAccountId"`
	Amount        int64  `json:"amount"`
	Description   string `json:"description"`
	Date          string `json:"date"`
}

// Validate checks the transfer payload.
func (r TransferRequest) Validate() error {
	if r.FromAccountID == "" || r.ToAccountID == "" {
		return ErrValidation("fromAccountId and toAccountId are required")
	}
	if r.FromAccountID == r.ToAccountID {
		return ErrValidation("cannot transfer to the same account")
	}
	if r.Amount <= 0 {
		return ErrValidation("amount must be positive")
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return ErrValidation("date must be YYYY-MM-DD")
	}
	return nil
}

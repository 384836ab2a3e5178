package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionExpense  TransactionType = "expense"
	TransactionIncome   TransactionType = "income"
	TransactionTransfer TransactionType = "transfer"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionExpense, TransactionIncome, TransactionTransfer:
		return true
	}
	return false
}

// RecurringFrequency is the repeat cadence of a recurring template.
type RecurringFrequency string

const (
	FrequencyDaily   RecurringFrequency = "daily"
	FrequencyWeekly  RecurringFrequency = "weekly"
	FrequencyMonthly RecurringFrequency = "monthly"
	FrequencyYearly  RecurringFrequency = "yearly"
)

// RecurringRule describes how a recurring transaction template repeats.
// Stored as a JSON column on the transactions table.
type RecurringRule struct {
	Frequency RecurringFrequency `json:"frequency"`
	Day       int                `json:"day,omitempty"`       // day of month, monthly only
	DayOfWeek int                `json:"dayOfWeek,omitempty"` // 0=Sunday, weekly only
}

// Scan implements sql.Scanner.
func (r *RecurringRule) Scan(value any) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			b = []byte(s)
		} else {
			return fmt.Errorf("recurring rule: unsupported scan type %T", value)
		}
	}
	return json.Unmarshal(b, r)
}

// Value implements driver.Valuer.
func (r RecurringRule) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Next returns the occurrence after from. Unknown frequencies fall back
// to monthly.
func (r *RecurringRule) Next(from time.Time) time.Time {
	switch r.Frequency {
	case FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyMonthly:
		next := from.AddDate(0, 1, 0)
		if r.Day > 0 {
			next = time.Date(next.Year(), next.Month(), r.Day, 0, 0, 0, 0, next.Location())
		}
		return next
	case FrequencyYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

// Transaction is a single ledger entry. Amounts are integer cents,
// positive for income and negative for expenses. Recurring templates
// carry IsRecurring=true and a rule; generated copies do not.
type Transaction struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"userId"`
	AccountID           string          `json:"accountId"`
	CategoryID          string          `json:"categoryId"`
	Amount              int64           `json:"amount"`
	Type                TransactionType `json:"type"`
	Description         string          `json:"description,omitempty"`
	Date                time.Time       `json:"date"`
	IsShared            bool            `json:"isShared"`
	IsRecurring         bool            `json:"isRecurring"`
	RecurringRule       *RecurringRule  `json:"recurringRule,omitempty"`
	Tags                []string        `json:"tags,omitempty"`
	TransferToAccountID *string         `json:"transferToAccountId,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// CreateTransactionRequest records a new ledger entry. Date uses
// YYYY-MM-DD.
type CreateTransactionRequest struct {
	AccountID           string          `json:"accountId"`
	CategoryID          string          `json:"categoryId"`
	Amount              int64           `json:"amount"`
	Type                TransactionType `json:"type"`
	Description         string          `json:"description"`
	Date                string          `json:"date"`
	IsShared            bool            `json:"isShared"`
	IsRecurring         bool            `json:"isRecurring"`
	RecurringRule       *RecurringRule  `json:"recurringRule,omitempty"`
	Tags                []string        `json:"tags,omitempty"`
	TransferToAccountID *string         `json:"transferToAccountId,omitempty"`
}

// Validate checks the creation payload.
func (r CreateTransactionRequest) Validate() error {
	if r.AccountID == "" {
		return ErrValidation("accountId is required")
	}
	if r.CategoryID == "" && r.Type != TransactionTransfer {
		return ErrValidation("categoryId is required")
	}
	if r.Amount == 0 {
		return ErrValidation("amount must be non-zero")
	}
	if !r.Type.Valid() {
		return ErrValidation("unknown transaction type %q", r.Type)
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return ErrValidation("date must be YYYY-MM-DD")
	}
	if r.Type == TransactionTransfer && r.TransferToAccountID == nil {
		return ErrValidation("transfer requires transferToAccountId")
	}
	return nil
}

// UpdateTransactionRequest carries optional transaction field updates.
type UpdateTransactionRequest struct {
	AccountID   *string  `json:"accountId,omitempty"`
	CategoryID  *string  `json:"categoryId,omitempty"`
	Amount      *int64   `json:"amount,omitempty"`
	Description *string  `json:"description,omitempty"`
	Date        *string  `json:"date,omitempty"`
	IsShared    *bool    `json:"isShared,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// TransactionFilters narrows transaction listings. Zero values mean no
// filter. Dates use YYYY-MM-DD.
type TransactionFilters struct {
	AccountID  string
	CategoryID string
	StartDate  string
	EndDate    string
	Type       string
	IsShared   *bool
}

// GenerateRecurringResponse reports a recurring-generation run.
type GenerateRecurringResponse struct {
	Generated int      `json:"generated"`
	Templates int      `json:"templates"`
	Errors    []string `json:"errors,omitempty"`
}

package domain

import (
	"time"
)

// AccountType classifies a money account.
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountCredit     AccountType = "credit"
	AccountCash       AccountType = "cash"
	AccountInvestment AccountType = "investment"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountChecking, AccountSavings, AccountCredit, AccountCash, AccountInvestment:
		return true
	}
	return false
}

// Account holds a running balance in integer cents. The balance is
// maintained by transaction writes, never set directly after creation.
type Account struct {
	ID        string      `json:"id"`
	OwnerID   string      `json:"ownerId"`
	Name      string      `json:"name"`
	Type      AccountType `json:"type"`
	Balance   int64       `json:"balance"`
	Currency  string      `json:"currency"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// CreateAccountRequest opens a new account with a starting balance.
type CreateAccountRequest struct {
	Name     string      `json:"name"`
	Type     AccountType `json:"type"`
	Balance  int64       `json:"balance"`
	Currency string      `json:"currency"`
}

// Validate checks the creation payload.
func (r CreateAccountRequest) Validate() error {
	if r.Name == "" {
		return ErrValidation("account name is required")
	}
	if !r.Type.Valid() {
		return ErrValidation("unknown account type %q", r.Type)
	}
	return nil
}

// UpdateAccountRequest carries optional account field updates.
type UpdateAccountRequest struct {
	Name *string      `json:"name,omitempty"`
	Type *AccountType `json:"type,omitempty"`
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/asilingas/fambudg/internal/domain"
	"github.com/asilingas/fambudg/pkg/access"
)

// TransactionService maintains the ledger and keeps account balances in
// step with every write. Ownership checks: admins touch any
// transaction, other roles only their own.
type TransactionService struct {
	txns     domain.TransactionRepository
	accounts domain.AccountRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txns domain.TransactionRepository, accounts domain.AccountRepository) *TransactionService {
	return &TransactionService{txns: txns, accounts: accounts}
}

// Create records a transaction and applies its amount to the account
// balance. Transfers also apply the inverse to the destination account.
func (s *TransactionService) Create(ctx context.Context, userID string, req *domain.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	txn, err := s.txns.Create(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.UpdateBalance(ctx, req.AccountID, req.Amount); err != nil {
		return nil, err
	}
	if req.Type == domain.TransactionTransfer && req.TransferToAccountID != nil {
		if err := s.accounts.UpdateBalance(ctx, *req.TransferToAccountID, -req.Amount); err != nil {
			return nil, err
		}
	}
	return txn, nil
}

func (s *TransactionService) Get(ctx context.Context, p access.Principal, id string) (*domain.Transaction, error) {
	txn, err := s.txns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Role != access.RoleAdmin && txn.UserID != p.ID {
		return nil, domain.ErrAccessDenied("transaction %s does not belong to you", id)
	}
	return txn, nil
}

// List returns the caller's transactions; admins see the whole family.
func (s *TransactionService) List(ctx context.Context, p access.Principal, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	if p.Role == access.RoleAdmin {
		sf := &domain.SearchFilters{}
		if filters != nil {
			sf.AccountID = filters.AccountID
			sf.CategoryID = filters.CategoryID
			sf.StartDate = filters.StartDate
			sf.EndDate = filters.EndDate
		}
		result, err := s.txns.Search(ctx, sf)
		if err != nil {
			return nil, err
		}
		return result.Transactions, nil
	}
	return s.txns.ListByUser(ctx, p.ID, filters)
}

// Update applies field changes and rebalances accounts when the amount
// or account changed: the original effect is reversed, the new one
// applied.
func (s *TransactionService) Update(ctx context.Context, p access.Principal, id string, req *domain.UpdateTransactionRequest) (*domain.Transaction, error) {
	original, err := s.Get(ctx, p, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.txns.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil || req.AccountID != nil {
		if err := s.accounts.UpdateBalance(ctx, original.AccountID, -original.Amount); err != nil {
			return nil, err
		}
		newAccountID := original.AccountID
		if req.AccountID != nil {
			newAccountID = *req.AccountID
		}
		newAmount := original.Amount
		if req.Amount != nil {
			newAmount = *req.Amount
		}
		if err := s.accounts.UpdateBalance(ctx, newAccountID, newAmount); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

// Delete removes a transaction and reverses its balance effect,
// including the destination side of transfers.
func (s *TransactionService) Delete(ctx context.Context, p access.Principal, id string) error {
	txn, err := s.Get(ctx, p, id)
	if err != nil {
		return err
	}

	if err := s.accounts.UpdateBalance(ctx, txn.AccountID, -txn.Amount); err != nil {
		return err
	}
	if txn.Type == domain.TransactionTransfer && txn.TransferToAccountID != nil {
		if err := s.accounts.UpdateBalance(ctx, *txn.TransferToAccountID, txn.Amount); err != nil {
			return err
		}
	}
	return s.txns.Delete(ctx, id)
}

// Transfer moves money between two accounts as a single shared
// transfer transaction. Transfers carry no category.
func (s *TransactionService) Transfer(ctx context.Context, userID string, req *domain.TransferRequest) (*domain.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	to := req.ToAccountID
	return s.Create(ctx, userID, &domain.CreateTransactionRequest{
		AccountID:           req.FromAccountID,
		Amount:              -req.Amount,
		Type:                domain.TransactionTransfer,
		Description:         req.Description,
		Date:                req.Date,
		IsShared:            true,
		TransferToAccountID: &to,
	})
}

// GenerateRecurring materialises all due occurrences of the caller's
// recurring templates up to the given date. Each template resumes from
// its latest generated copy, or from the template date itself.
func (s *TransactionService) GenerateRecurring(ctx context.Context, userID string, upTo time.Time) (*domain.GenerateRecurringResponse, error) {
	templates, err := s.txns.FindRecurring(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &domain.GenerateRecurringResponse{Templates: len(templates)}
	for _, tmpl := range templates {
		if tmpl.RecurringRule == nil {
			continue
		}

		latest, err := s.txns.FindLatestByTemplate(ctx, tmpl.UserID, tmpl.AccountID, tmpl.CategoryID, tmpl.Description)
		if err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("template %s: %s", tmpl.ID, err))
			continue
		}

		startDate := tmpl.Date
		if latest != nil {
			startDate = latest.Date
		}

		next := tmpl.RecurringRule.Next(startDate)
		for !next.After(upTo) {
			_, err := s.Create(ctx, userID, &domain.CreateTransactionRequest{
				AccountID:           tmpl.AccountID,
				CategoryID:          tmpl.CategoryID,
				Amount:              tmpl.Amount,
				Type:                tmpl.Type,
				Description:         tmpl.Description,
				Date:                next.Format("2006-01-02"),
				IsShared:            tmpl.IsShared,
				Tags:                tmpl.Tags,
				TransferToAccountID: tmpl.TransferToAccountID,
			})
			if err != nil {
				resp.Errors = append(resp.Errors, fmt.Sprintf("template %s date %s: %s", tmpl.ID, next.Format("2006-01-02"), err))
				break
			}
			resp.Generated++
			next = tmpl.RecurringRule.Next(next)
		}
	}
	return resp, nil
}

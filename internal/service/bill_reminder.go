package service

import (
	"context"
	"time"

	"github.com/asilingas/fambudg/internal/domain"
)

// BillReminderService manages recurring bills. Paying a bill records an
// expense transaction and advances the reminder by one cadence.
type BillReminderService struct {
	bills domain.BillReminderRepository
	txns  *TransactionService
}

// NewBillReminderService creates a new BillReminderService.
func NewBillReminderService(bills domain.BillReminderRepository, txns *TransactionService) *BillReminderService {
	return &BillReminderService{bills: bills, txns: txns}
}

func (s *BillReminderService) Create(ctx context.Context, req *domain.CreateBillReminderRequest) (*domain.BillReminder, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.bills.Create(ctx, req)
}

func (s *BillReminderService) Get(ctx context.Context, id string) (*domain.BillReminder, error) {
	return s.bills.GetByID(ctx, id)
}

func (s *BillReminderService) List(ctx context.Context) ([]*domain.BillReminder, error) {
	return s.bills.List(ctx)
}

// ListUpcoming returns active bills due within the window.
func (s *BillReminderService) ListUpcoming(ctx context.Context, within time.Duration) ([]*domain.BillReminder, error) {
	if within <= 0 {
		within = 30 * 24 * time.Hour
	}
	return s.bills.ListUpcoming(ctx, within)
}

func (s *BillReminderService) Update(ctx context.Context, id string, req *domain.UpdateBillReminderRequest) (*domain.BillReminder, error) {
	if req.Frequency != nil && !req.Frequency.Valid() {
		return nil, domain.ErrValidation("unknown bill frequency %q", *req.Frequency)
	}
	if req.Amount != nil && *req.Amount <= 0 {
		return nil, domain.ErrValidation("amount must be positive")
	}
	return s.bills.Update(ctx, id, req)
}

func (s *BillReminderService) Delete(ctx context.Context, id string) error {
	return s.bills.Delete(ctx, id)
}

// Pay records the bill as an expense from the given account and moves
// NextDueDate one cadence forward.
func (s *BillReminderService) Pay(ctx context.Context, userID, id string, req *domain.PayBillRequest) (*domain.Transaction, error) {
	if req.AccountID == "" {
		return nil, domain.ErrValidation("accountId is required")
	}
	date := req.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, domain.ErrValidation("date must be YYYY-MM-DD")
	}

	bill, err := s.bills.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !bill.IsActive {
		return nil, domain.ErrConflict("bill %s is inactive", id)
	}

	if bill.CategoryID == nil {
		return nil, domain.ErrValidation("bill %s has no category; set one before paying", id)
	}
	txn, err := s.txns.Create(ctx, userID, &domain.CreateTransactionRequest{
		AccountID:   req.AccountID,
		CategoryID:  *bill.CategoryID,
		Amount:      -bill.Amount,
		Type:        domain.TransactionExpense,
		Description: bill.Name,
		Date:        date,
		IsShared:    true,
	})
	if err != nil {
		return nil, err
	}

	if err := s.bills.AdvanceNextDueDate(ctx, id, bill.Frequency.Advance(bill.NextDueDate)); err != nil {
		return nil, err
	}
	return txn, nil
}

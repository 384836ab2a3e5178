package service

import (
	"context"

	"github.com/asilingas/fambudg/internal/domain"
	"github.com/asilingas/fambudg/pkg/access"
)

// AccountService manages money accounts with ownership checks: admins
// see and manage every account, other roles only their own.
type AccountService struct {
	accounts domain.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts domain.AccountRepository) *AccountService {
	return &AccountService{accounts: accounts}
}

func (s *AccountService) List(ctx context.Context, p access.Principal) ([]*domain.Account, error) {
	if p.Role == access.RoleAdmin {
		return s.accounts.List(ctx)
	}
	return s.accounts.ListByOwner(ctx, p.ID)
}

func (s *AccountService) Get(ctx context.Context, p access.Principal, id string) (*domain.Account, error) {
	a, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Role != access.RoleAdmin && a.OwnerID != p.ID {
		return nil, domain.ErrAccessDenied("account %s does not belong to you", id)
	}
	return a, nil
}

func (s *AccountService) Create(ctx context.Context, p access.Principal, req *domain.CreateAccountRequest) (*domain.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.accounts.Create(ctx, p.ID, req)
}

func (s *AccountService) Update(ctx context.Context, p access.Principal, id string, req *domain.UpdateAccountRequest) (*domain.Account, error) {
	if _, err := s.Get(ctx, p, id); err != nil {
		return nil, err
	}
	if req.Type != nil && !req.Type.Valid() {
		return nil, domain.ErrValidation("unknown account type %q", *req.Type)
	}
	return s.accounts.Update(ctx, id, req)
}

func (s *AccountService) Delete(ctx context.Context, p access.Principal, id string) error {
	if _, err := s.Get(ctx, p, id); err != nil {
		return err
	}
	return s.accounts.Delete(ctx, id)
}

package service

import (
	"context"
	"errors"

	"github.com/asilingas/fambudg/internal/domain"
	"github.com/asilingas/fambudg/pkg/access"
)

// AllowanceService manages per-member spending allowances. Spent and
// Remaining are derived from the member's expense transactions since
// the period start on every read.
type AllowanceService struct {
	allowances domain.AllowanceRepository
	users      domain.UserRepository
}

// NewAllowanceService creates a new AllowanceService.
func NewAllowanceService(allowances domain.AllowanceRepository, users domain.UserRepository) *AllowanceService {
	return &AllowanceService{allowances: allowances, users: users}
}

func (s *AllowanceService) Create(ctx context.Context, req *domain.CreateAllowanceRequest) (*domain.Allowance, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}
	a, err := s.allowances.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, a)
}

// List returns allowances visible to the caller: admins see every
// member's, others only their own.
func (s *AllowanceService) List(ctx context.Context, p access.Principal) ([]*domain.Allowance, error) {
	if p.Role == access.RoleAdmin {
		all, err := s.allowances.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, a := range all {
			if _, err := s.enrich(ctx, a); err != nil {
				return nil, err
			}
		}
		return all, nil
	}

	a, err := s.allowances.GetByUserID(ctx, p.ID)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return []*domain.Allowance{}, nil
		}
		return nil, err
	}
	if _, err := s.enrich(ctx, a); err != nil {
		return nil, err
	}
	return []*domain.Allowance{a}, nil
}

func (s *AllowanceService) Get(ctx context.Context, p access.Principal, id string) (*domain.Allowance, error) {
	a, err := s.allowances.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Role != access.RoleAdmin && a.UserID != p.ID {
		return nil, domain.ErrAccessDenied("allowance %s does not belong to you", id)
	}
	return s.enrich(ctx, a)
}

func (s *AllowanceService) Update(ctx context.Context, id string, req *domain.UpdateAllowanceRequest) (*domain.Allowance, error) {
	if req.Amount != nil && *req.Amount <= 0 {
		return nil, domain.ErrValidation("amount must be positive")
	}
	a, err := s.allowances.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, a)
}

func (s *AllowanceService) Delete(ctx context.Context, id string) error {
	return s.allowances.Delete(ctx, id)
}

// enrich fills the derived Spent and Remaining fields in place.
func (s *AllowanceService) enrich(ctx context.Context, a *domain.Allowance) (*domain.Allowance, error) {
	spent, err := s.allowances.SpentSince(ctx, a.UserID, a.PeriodStart)
	if err != nil {
		return nil, err
	}
	a.Spent = spent
	a.Remaining = a.Amount - spent
	return a, nil
}

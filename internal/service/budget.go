package service

import (
	"context"

	"github.com/asilingas/fambudg/internal/domain"
)

// BudgetService manages monthly category limits. Budgets are shared
// family-wide; write access is restricted at the route level.
type BudgetService struct {
	budgets    domain.BudgetRepository
	categories domain.CategoryRepository
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgets domain.BudgetRepository, categories domain.CategoryRepository) *BudgetService {
	return &BudgetService{budgets: budgets, categories: categories}
}

func (s *BudgetService) Create(ctx context.Context, req *domain.CreateBudgetRequest) (*domain.Budget, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.categories.GetByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	return s.budgets.Create(ctx, req)
}

func (s *BudgetService) Get(ctx context.Context, id string) (*domain.Budget, error) {
	return s.budgets.GetByID(ctx, id)
}

func (s *BudgetService) List(ctx context.Context, filters *domain.BudgetFilters) ([]*domain.Budget, error) {
	return s.budgets.List(ctx, filters)
}

func (s *BudgetService) Update(ctx context.Context, id string, req *domain.UpdateBudgetRequest) (*domain.Budget, error) {
	if req.Amount != nil && *req.Amount <= 0 {
		return nil, domain.ErrValidation("amount must be positive")
	}
	return s.budgets.Update(ctx, id, req)
}

func (s *BudgetService) Delete(ctx context.Context, id string) error {
	return s.budgets.Delete(ctx, id)
}

// Summary compares each budget of the period against actual spending.
func (s *BudgetService) Summary(ctx context.Context, month, year int) ([]*domain.BudgetSummary, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrValidation("month must be between 1 and 12")
	}
	return s.budgets.Summary(ctx, month, year)
}

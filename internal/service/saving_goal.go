package service

import (
	"context"

	"github.com/asilingas/fambudg/internal/domain"
)

// SavingGoalService manages shared family saving goals.
type SavingGoalService struct {
	goals domain.SavingGoalRepository
}

// NewSavingGoalService creates a new SavingGoalService.
func NewSavingGoalService(goals domain.SavingGoalRepository) *SavingGoalService {
	return &SavingGoalService{goals: goals}
}

func (s *SavingGoalService) Create(ctx context.Context, req *domain.CreateSavingGoalRequest) (*domain.SavingGoal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.goals.Create(ctx, req)
}

func (s *SavingGoalService) Get(ctx context.Context, id string) (*domain.SavingGoal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *SavingGoalService) List(ctx context.Context) ([]*domain.SavingGoal, error) {
	return s.goals.List(ctx)
}

func (s *SavingGoalService) Update(ctx context.Context, id string, req *domain.UpdateSavingGoalRequest) (*domain.SavingGoal, error) {
	if req.Status != nil && !req.Status.Valid() {
		return nil, domain.ErrValidation("unknown goal status %q", *req.Status)
	}
	if req.TargetAmount != nil && *req.TargetAmount <= 0 {
		return nil, domain.ErrValidation("targetAmount must be positive")
	}
	return s.goals.Update(ctx, id, req)
}

func (s *SavingGoalService) Delete(ctx context.Context, id string) error {
	return s.goals.Delete(ctx, id)
}

// Contribute adds money toward a goal. The goal completes automatically
// once contributions reach the target.
func (s *SavingGoalService) Contribute(ctx context.Context, id string, req *domain.ContributeRequest) (*domain.SavingGoal, error) {
	if req.Amount <= 0 {
		return nil, domain.ErrValidation("amount must be positive")
	}
	goal, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if goal.Status != domain.GoalActive {
		return nil, domain.ErrConflict("goal %s is %s", id, goal.Status)
	}
	return s.goals.AddContribution(ctx, id, req.Amount)
}

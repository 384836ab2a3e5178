package domain

import "time"

// GoalStatus is the lifecycle state of a saving goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalCancelled GoalStatus = "cancelled"
)

// Valid reports whether s is a known goal status.
func (s GoalStatus) Valid() bool {
	switch s {
	case GoalActive, GoalCompleted, GoalCancelled:
		return true
	}
	return false
}

// SavingGoal is a family savings target. A goal completes automatically
// when contributions reach the target amount.
type SavingGoal struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	TargetAmount  int64      `json:"targetAmount"`
	CurrentAmount int64      `json:"currentAmount"`
	TargetDate    *time.Time `json:"targetDate,omitempty"`
	Priority      int        `json:"priority"`
	Status        GoalStatus `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// CreateSavingGoalRequest opens a new goal. TargetDate uses YYYY-MM-DD.
type CreateSavingGoalRequest struct {
	Name         string  `json:"name"`
	TargetAmount int64   `json:"targetAmount"`
	TargetDate   *string `json:"targetDate,omitempty"`
	Priority     int     `json:"priority"`
}

// Validate checks the creation payload.
func (r CreateSavingGoalRequest) Validate() error {
	if r.Name == "" {
		return ErrValidation("goal name is required")
	}
	if r.TargetAmount <= 0 {
		return ErrValidation("targetAmount must be positive")
	}
	return nil
}

// UpdateSavingGoalRequest carries optional goal field updates.
type UpdateSavingGoalRequest struct {
	Name         *string     `json:"name,omitempty"`
	TargetAmount *int64      `json:"targetAmount,omitempty"`
	TargetDate   *string     `json:"targetDate,omitempty"`
	Priority     *int        `json:"priority,omitempty"`
	Status       *GoalStatus `json:"status,omitempty"`
}

// ContributeRequest adds money toward a goal.
type ContributeRequest struct {
	Amount int64 `json:"amount"`
}

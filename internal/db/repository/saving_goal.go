package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/asilingas/fambudg/internal/domain"
)

var _ domain.SavingGoalRepository = (*SavingGoalRepo)(nil)

const goalCols = `id, name, target_amount, current_amount, target_date, priority, status, created_at, updated_at`

// SavingGoalRepo implements domain.SavingGoalRepository on SQLite.
type SavingGoalRepo struct {
	db *sql.DB
}

// NewSavingGoalRepo creates a new SavingGoalRepo.
func NewSavingGoalRepo(db *sql.DB) *SavingGoalRepo {
	return &SavingGoalRepo{db: db}
}

func scanGoal(row interface{ Scan(dest ...any) error }) (*domain.SavingGoal, error) {
	g := &domain.SavingGoal{}
	var target sql.NullTime
	err := row.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &target,
		&g.Priority, &g.Status, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	if target.Valid {
		g.TargetDate = &target.Time
	}
	return g, nil
}

// Create opens a new active goal.
func (r *SavingGoalRepo) Create(ctx context.Context, req *domain.CreateSavingGoalRequest) (*domain.SavingGoal, error) {
	var target sql.NullTime
	if req.TargetDate != nil {
		d, err := parseDate(*req.TargetDate)
		if err != nil {
			return nil, err
		}
		target = sql.NullTime{Time: d, Valid: true}
	}
	priority := req.Priority
	if priority < 1 {
		priority = 1
	}

	id := domain.NewID()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO saving_goals (id, name, target_amount, target_date, priority) VALUES (?, ?, ?, ?, ?)`,
		id, req.Name, req.TargetAmount, target, priority)
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns a goal by ID.
func (r *SavingGoalRepo) GetByID(ctx context.Context, id string) (*domain.SavingGoal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+goalCols+` FROM saving_goals WHERE id = ?`, id)
	return scanGoal(row)
}

// List returns all goals ordered by priority.
func (r *SavingGoalRepo) List(ctx context.Context) ([]*domain.SavingGoal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+goalCols+` FROM saving_goals ORDER BY priority, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var goals []*domain.SavingGoal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// Update applies the non-nil fields of req to the goal.
func (r *SavingGoalRepo) Update(ctx context.Context, id string, req *domain.UpdateSavingGoalRequest) (*domain.SavingGoal, error) {
	g, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.TargetAmount != nil {
		g.TargetAmount = *req.TargetAmount
	}
	if req.TargetDate != nil {
		d, err := parseDate(*req.TargetDate)
		if err != nil {
			return nil, err
		}
		g.TargetDate = &d
	}
	if req.Priority != nil {
		g.Priority = *req.Priority
	}
	if req.Status != nil {
		g.Status = *req.Status
	}

	var target sql.NullTime
	if g.TargetDate != nil {
		target = sql.NullTime{Time: *g.TargetDate, Valid: true}
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE saving_goals SET name = ?, target_amount = ?, target_date = ?, priority = ?,
			status = ?, updated_at = ? WHERE id = ?`,
		g.Name, g.TargetAmount, target, g.Priority, g.Status, time.Now().UTC(), id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a goal.
func (r *SavingGoalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saving_goals WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("saving goal %s not found", id)
	}
	return nil
}

// AddContribution increments the current amount and completes the goal
// when it reaches the target.
func (r *SavingGoalRepo) AddContribution(ctx context.Context, id string, amount int64) (*domain.SavingGoal, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE saving_goals SET
			current_amount = current_amount + ?,
			status = CASE WHEN current_amount + ? >= target_amount THEN 'completed' ELSE status END,
			updated_at = ?
		WHERE id = ?`,
		amount, amount, time.Now().UTC(), id)
	if err != nil {
		return nil, mapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrNotFound("saving goal %s not found", id)
	}
	return r.GetByID(ctx, id)
}

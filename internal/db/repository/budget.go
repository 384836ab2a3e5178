package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/asilingas/fambudg/internal/domain"
)

var _ domain.BudgetRepository = (*BudgetRepo)(nil)

const budgetCols = `id, category_id, amount, month, year, created_at`

// BudgetRepo implements domain.BudgetRepository on SQLite.
type BudgetRepo struct {
	db *sql.DB
}

// NewBudgetRepo creates a new BudgetRepo.
func NewBudgetRepo(db *sql.DB) *BudgetRepo {
	return &BudgetRepo{db: db}
}

func scanBudget(row interface{ Scan(dest ...any) error }) (*domain.Budget, error) {
	b := &domain.Budget{}
	err := row.Scan(&b.ID, &b.CategoryID, &b.Amount, &b.Month, &b.Year, &b.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return b, nil
}

// Create inserts a new budget. One budget per category and period.
func (r *BudgetRepo) Create(ctx context.Context, req *domain.CreateBudgetRequest) (*domain.Budget, error) {
	id := domain.NewID()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO budgets (id, category_id, amount, month, year) VALUES (?, ?, ?, ?, ?)`,
		id, req.CategoryID, req.Amount, req.Month, req.Year)
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns a budget by ID.
func (r *BudgetRepo) GetByID(ctx context.Context, id string) (*domain.Budget, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+budgetCols+` FROM budgets WHERE id = ?`, id)
	return scanBudget(row)
}

// List returns budgets, optionally narrowed to a month/year.
func (r *BudgetRepo) List(ctx context.Context, filters *domain.BudgetFilters) ([]*domain.Budget, error) {
	query := `SELECT ` + budgetCols + ` FROM budgets`
	var args []any
	if filters != nil && filters.Month > 0 && filters.Year > 0 {
		query += ` WHERE month = ? AND year = ?`
		args = append(args, filters.Month, filters.Year)
	}
	query += ` ORDER BY year, month`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var budgets []*domain.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// Update changes the budget limit.
func (r *BudgetRepo) Update(ctx context.Context, id string, req *domain.UpdateBudgetRequest) (*domain.Budget, error) {
	if req.Amount == nil {
		return r.GetByID(ctx, id)
	}
	res, err := r.db.ExecContext(ctx, `UPDATE budgets SET amount = ? WHERE id = ?`, *req.Amount, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrNotFound("budget %s not found", id)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a budget.
func (r *BudgetRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("budget %s not found", id)
	}
	return nil
}

// Summary joins each budget of the period with the actual expense total
// of its category. Expenses are stored negative; the summary reports
// spending as positive cents.
func (r *BudgetRepo) Summary(ctx context.Context, month, year int) ([]*domain.BudgetSummary, error) {
	start := fmt.Sprintf("%04d-%02d-01", year, month)
	end := fmt.Sprintf("%04d-%02d-31", year, month)

	rows, err := r.db.QueryContext(ctx, `
		SELECT b.category_id, c.name, b.amount,
			COALESCE((
				SELECT -SUM(t.amount) FROM transactions t
				WHERE t.category_id = b.category_id
					AND t.type = 'expense'
					AND t.date >= ? AND t.date <= ?
			), 0) AS actual
		FROM budgets b
		JOIN categories c ON c.id = b.category_id
		WHERE b.month = ? AND b.year = ?
		ORDER BY c.name`,
		start, end, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var summaries []*domain.BudgetSummary
	for rows.Next() {
		s := &domain.BudgetSummary{}
		if err := rows.Scan(&s.CategoryID, &s.CategoryName, &s.BudgetAmount, &s.ActualAmount); err != nil {
			return nil, err
		}
		s.Remaining = s.BudgetAmount - s.ActualAmount
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

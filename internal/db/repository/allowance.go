package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/asilingas/fambudg/internal/domain"
)

var _ domain.AllowanceRepository = (*AllowanceRepo)(nil)

const allowanceCols = `id, user_id, amount, period_start, created_at, updated_at`

// AllowanceRepo implements domain.AllowanceRepository on SQLite. Spent
// and Remaining are computed by the service from SpentSince.
type AllowanceRepo struct {
	db *sql.DB
}

// NewAllowanceRepo creates a new AllowanceRepo.
func NewAllowanceRepo(db *sql.DB) *AllowanceRepo {
	return &AllowanceRepo{db: db}
}

func scanAllowance(row interface{ Scan(dest ...any) error }) (*domain.Allowance, error) {
	a := &domain.Allowance{}
	err := row.Scan(&a.ID, &a.UserID, &a.Amount, &a.PeriodStart, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return a, nil
}

// Create grants an allowance. One allowance per user.
func (r *AllowanceRepo) Create(ctx context.Context, req *domain.CreateAllowanceRequest) (*domain.Allowance, error) {
	start, err := parseDate(req.PeriodStart)
	if err != nil {
		return nil, err
	}

	id := domain.NewID()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO allowances (id, user_id, amount, period_start) VALUES (?, ?, ?, ?)`,
		id, req.UserID, req.Amount, start.Format(dateLayout))
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns an allowance by ID.
func (r *AllowanceRepo) GetByID(ctx context.Context, id string) (*domain.Allowance, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+allowanceCols+` FROM allowances WHERE id = ?`, id)
	return scanAllowance(row)
}

// GetByUserID returns the allowance granted to a user.
func (r *AllowanceRepo) GetByUserID(ctx context.Context, userID string) (*domain.Allowance, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+allowanceCols+` FROM allowances WHERE user_id = ?`, userID)
	return scanAllowance(row)
}

// List returns all allowances.
func (r *AllowanceRepo) List(ctx context.Context) ([]*domain.Allowance, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+allowanceCols+` FROM allowances ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var allowances []*domain.Allowance
	for rows.Next() {
		a, err := scanAllowance(rows)
		if err != nil {
			return nil, err
		}
		allowances = append(allowances, a)
	}
	return allowances, rows.Err()
}

// Update applies the non-nil fields of req to the allowance.
func (r *AllowanceRepo) Update(ctx context.Context, id string, req *domain.UpdateAllowanceRequest) (*domain.Allowance, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Amount != nil {
		a.Amount = *req.Amount
	}
	if req.PeriodStart != nil {
		d, err := parseDate(*req.PeriodStart)
		if err != nil {
			return nil, err
		}
		a.PeriodStart = d
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE allowances SET amount = ?, period_start = ?, updated_at = ? WHERE id = ?`,
		a.Amount, a.PeriodStart.Format(dateLayout), time.Now().UTC(), id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes an allowance.
func (r *AllowanceRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM allowances WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("allowance %s not found", id)
	}
	return nil
}

// SpentSince totals a user's expense spending since the given date,
// reported as positive cents.
func (r *AllowanceRepo) SpentSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	var spent int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(-SUM(amount), 0) FROM transactions
		WHERE user_id = ? AND type = 'expense' AND date >= ?`,
		userID, since.Format(dateLayout)).Scan(&spent)
	return spent, err
}

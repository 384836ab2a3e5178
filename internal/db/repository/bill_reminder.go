package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/asilingas/fambudg/internal/domain"
)

var _ domain.BillReminderRepository = (*BillReminderRepo)(nil)

const billCols = `id, name, amount, due_day, frequency, category_id, account_id, is_active, next_due_date, created_at, updated_at`

// BillReminderRepo implements domain.BillReminderRepository on SQLite.
type BillReminderRepo struct {
	db *sql.DB
}

// NewBillReminderRepo creates a new BillReminderRepo.
func NewBillReminderRepo(db *sql.DB) *BillReminderRepo {
	return &BillReminderRepo{db: db}
}

func scanBill(row interface{ Scan(dest ...any) error }) (*domain.BillReminder, error) {
	b := &domain.BillReminder{}
	var category, account sql.NullString
	err := row.Scan(&b.ID, &b.Name, &b.Amount, &b.DueDay, &b.Frequency, &category, &account,
		&b.IsActive, &b.NextDueDate, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	b.CategoryID = ptrFromNullStr(category)
	b.AccountID = ptrFromNullStr(account)
	return b, nil
}

// Create registers a new active bill.
func (r *BillReminderRepo) Create(ctx context.Context, req *domain.CreateBillReminderRequest) (*domain.BillReminder, error) {
	due, err := parseDate(req.NextDueDate)
	if err != nil {
		return nil, err
	}

	id := domain.NewID()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO bill_reminders (id, name, amount, due_day, frequency, category_id, account_id, next_due_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, req.Name, req.Amount, req.DueDay, req.Frequency,
		nullStrFromPtr(req.CategoryID), nullStrFromPtr(req.AccountID), due.Format(dateLayout))
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns a bill by ID.
func (r *BillReminderRepo) GetByID(ctx context.Context, id string) (*domain.BillReminder, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+billCols+` FROM bill_reminders WHERE id = ?`, id)
	return scanBill(row)
}

// List returns all bills ordered by next due date.
func (r *BillReminderRepo) List(ctx context.Context) ([]*domain.BillReminder, error) {
	return r.list(ctx, `SELECT `+billCols+` FROM bill_reminders ORDER BY next_due_date`)
}

// ListUpcoming returns active bills due within the window.
func (r *BillReminderRepo) ListUpcoming(ctx context.Context, within time.Duration) ([]*domain.BillReminder, error) {
	cutoff := time.Now().UTC().Add(within)
	return r.list(ctx,
		`SELECT `+billCols+` FROM bill_reminders
		WHERE is_active = 1 AND next_due_date <= ? ORDER BY next_due_date`,
		cutoff.Format(dateLayout))
}

func (r *BillReminderRepo) list(ctx context.Context, query string, args ...any) ([]*domain.BillReminder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var bills []*domain.BillReminder
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

// Update applies the non-nil fields of req to the bill.
func (r *BillReminderRepo) Update(ctx context.Context, id string, req *domain.UpdateBillReminderRequest) (*domain.BillReminder, error) {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Amount != nil {
		b.Amount = *req.Amount
	}
	if req.DueDay != nil {
		b.DueDay = *req.DueDay
	}
	if req.Frequency != nil {
		b.Frequency = *req.Frequency
	}
	if req.CategoryID != nil {
		b.CategoryID = req.CategoryID
	}
	if req.AccountID != nil {
		b.AccountID = req.AccountID
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE bill_reminders SET name = ?, amount = ?, due_day = ?, frequency = ?,
			category_id = ?, account_id = ?, is_active = ?, updated_at = ? WHERE id = ?`,
		b.Name, b.Amount, b.DueDay, b.Frequency, nullStrFromPtr(b.CategoryID),
		nullStrFromPtr(b.AccountID), b.IsActive, time.Now().UTC(), id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a bill.
func (r *BillReminderRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bill_reminders WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("bill reminder %s not found", id)
	}
	return nil
}

// AdvanceNextDueDate moves the bill's due date forward after payment.
func (r *BillReminderRepo) AdvanceNextDueDate(ctx context.Context, id string, next time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bill_reminders SET next_due_date = ?, updated_at = ? WHERE id = ?`,
		next.Format(dateLayout), time.Now().UTC(), id)
	if err != nil {
		return mapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("bill reminder %s not found", id)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/asilingas/fambudg/internal/domain"
)

var _ domain.TransactionRepository = (*TransactionRepo)(nil)

const transactionCols = `id, user_id, account_id, category_id, amount, type, description, date,
	is_shared, is_recurring, recurring_rule, tags, transfer_to_account_id, created_at, updated_at`

// TransactionRepo implements domain.TransactionRepository on SQLite.
type TransactionRepo struct {
	db *sql.DB
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(db *sql.DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

func scanTransaction(row interface{ Scan(dest ...any) error }) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	var category, rule, transferTo sql.NullString
	var tags string
	err := row.Scan(&t.ID, &t.UserID, &t.AccountID, &category, &t.Amount, &t.Type,
		&t.Description, &t.Date, &t.IsShared, &t.IsRecurring, &rule, &tags,
		&transferTo, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	t.CategoryID = category.String
	if rule.Valid && rule.String != "" {
		var rr domain.RecurringRule
		if err := json.Unmarshal([]byte(rule.String), &rr); err == nil {
			t.RecurringRule = &rr
		}
	}
	t.Tags = decodeTags(tags)
	t.TransferToAccountID = ptrFromNullStr(transferTo)
	return t, nil
}

// Create inserts a new ledger entry. Balance maintenance is the
// service's responsibility.
func (r *TransactionRepo) Create(ctx context.Context, userID string, req *domain.CreateTransactionRequest) (*domain.Transaction, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	var category sql.NullString
	if req.CategoryID != "" {
		category = sql.NullString{String: req.CategoryID, Valid: true}
	}
	var rule sql.NullString
	if req.RecurringRule != nil {
		b, err := json.Marshal(req.RecurringRule)
		if err != nil {
			return nil, err
		}
		rule = sql.NullString{String: string(b), Valid: true}
	}

	id := domain.NewID()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, user_id, account_id, category_id, amount, type, description,
			date, is_shared, is_recurring, recurring_rule, tags, transfer_to_account_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, userID, req.AccountID, category, req.Amount, req.Type, req.Description,
		date.Format(dateLayout), req.IsShared, req.IsRecurring, rule, encodeTags(req.Tags),
		nullStrFromPtr(req.TransferToAccountID))
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns a transaction by ID.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+transactionCols+` FROM transactions WHERE id = ?`, id)
	return scanTransaction(row)
}

// ListByUser returns a user's transactions, newest first, narrowed by
// the optional filters.
func (r *TransactionRepo) ListByUser(ctx context.Context, userID string, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	query := `SELECT ` + transactionCols + ` FROM transactions WHERE user_id = ?`
	args := []any{userID}

	if filters != nil {
		if filters.AccountID != "" {
			query += ` AND account_id = ?`
			args = append(args, filters.AccountID)
		}
		if filters.CategoryID != "" {
			query += ` AND category_id = ?`
			args = append(args, filters.CategoryID)
		}
		if filters.StartDate != "" {
			query += ` AND date >= ?`
			args = append(args, filters.StartDate)
		}
		if filters.EndDate != "" {
			query += ` AND date <= ?`
			args = append(args, filters.EndDate)
		}
		if filters.Type != "" {
			query += ` AND type = ?`
			args = append(args, filters.Type)
		}
		if filters.IsShared != nil {
			query += ` AND is_shared = ?`
			args = append(args, *filters.IsShared)
		}
	}
	query += ` ORDER BY date DESC, created_at DESC`

	return r.list(ctx, query, args...)
}

// ListRecent returns a user's most recent transactions.
func (r *TransactionRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	return r.list(ctx,
		`SELECT `+transactionCols+` FROM transactions WHERE user_id = ?
		ORDER BY date DESC, created_at DESC LIMIT ?`, userID, limit)
}

func (r *TransactionRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var txns []*domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// Update applies the non-nil fields of req to the transaction.
func (r *TransactionRepo) Update(ctx context.Context, id string, req *domain.UpdateTransactionRequest) (*domain.Transaction, error) {
	t, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.AccountID != nil {
		t.AccountID = *req.AccountID
	}
	if req.CategoryID != nil {
		t.CategoryID = *req.CategoryID
	}
	if req.Amount != nil {
		t.Amount = *req.Amount
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Date != nil {
		d, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		t.Date = d
	}
	if req.IsShared != nil {
		t.IsShared = *req.IsShared
	}
	if req.Tags != nil {
		t.Tags = req.Tags
	}

	var category sql.NullString
	if t.CategoryID != "" {
		category = sql.NullString{String: t.CategoryID, Valid: true}
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE transactions SET account_id = ?, category_id = ?, amount = ?, description = ?,
			date = ?, is_shared = ?, tags = ?, updated_at = ? WHERE id = ?`,
		t.AccountID, category, t.Amount, t.Description, t.Date.Format(dateLayout), t.IsShared,
		encodeTags(t.Tags), time.Now().UTC(), id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a transaction.
func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("transaction %s not found", id)
	}
	return nil
}

// FindRecurring returns a user's recurring templates.
func (r *TransactionRepo) FindRecurring(ctx context.Context, userID string) ([]*domain.Transaction, error) {
	return r.list(ctx,
		`SELECT `+transactionCols+` FROM transactions
		WHERE user_id = ? AND is_recurring = 1 ORDER BY date`, userID)
}

// FindLatestByTemplate returns the most recent generated copy of a
// recurring template, or nil if none has been generated yet.
func (r *TransactionRepo) FindLatestByTemplate(ctx context.Context, userID, accountID, categoryID, description string) (*domain.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+transactionCols+` FROM transactions
		WHERE user_id = ? AND account_id = ? AND category_id = ? AND description = ?
			AND is_recurring = 0
		ORDER BY date DESC LIMIT 1`,
		userID, accountID, categoryID, description)
	t, err := scanTransaction(row)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// Search matches transactions across the whole family by description
// substring, amount range, dates, category, account, tags, and user.
func (r *TransactionRepo) Search(ctx context.Context, filters *domain.SearchFilters) (*domain.SearchResult, error) {
	var conds []string
	var args []any

	if filters.Description != "" {
		conds = append(conds, `description LIKE ?`)
		args = append(args, "%"+filters.Description+"%")
	}
	if filters.MinAmount != nil {
		conds = append(conds, `amount >= ?`)
		args = append(args, *filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		conds = append(conds, `amount <= ?`)
		args = append(args, *filters.MaxAmount)
	}
	if filters.StartDate != "" {
		conds = append(conds, `date >= ?`)
		args = append(args, filters.StartDate)
	}
	if filters.EndDate != "" {
		conds = append(conds, `date <= ?`)
		args = append(args, filters.EndDate)
	}
	if filters.CategoryID != "" {
		conds = append(conds, `category_id = ?`)
		args = append(args, filters.CategoryID)
	}
	if filters.AccountID != "" {
		conds = append(conds, `account_id = ?`)
		args = append(args, filters.AccountID)
	}
	if filters.UserID != "" {
		conds = append(conds, `user_id = ?`)
		args = append(args, filters.UserID)
	}
	for _, tag := range filters.Tags {
		conds = append(conds, `tags LIKE ?`)
		args = append(args, `%"`+tag+`"%`)
	}

	where := ""
	if len(conds) > 0 {
		where = ` WHERE ` + strings.Join(conds, ` AND `)
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	txns, err := r.list(ctx,
		`SELECT `+transactionCols+` FROM transactions`+where+` ORDER BY date DESC, created_at DESC`,
		args...)
	if err != nil {
		return nil, err
	}
	if txns == nil {
		txns = []*domain.Transaction{}
	}

	return &domain.SearchResult{Transactions: txns, TotalCount: total}, nil
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/asilingas/fambudg/internal/domain"
)

var _ domain.AccountRepository = (*AccountRepo)(nil)

const accountCols = `id, owner_id, name, type, balance, currency, created_at, updated_at`

// AccountRepo implements domain.AccountRepository on SQLite.
type AccountRepo struct {
	db *sql.DB
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func scanAccount(row interface{ Scan(dest ...any) error }) (*domain.Account, error) {
	a := &domain.Account{}
	err := row.Scan(&a.ID, &a.OwnerID, &a.Name, &a.Type, &a.Balance, &a.Currency, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return a, nil
}

// Create opens a new account with the given starting balance.
func (r *AccountRepo) Create(ctx context.Context, ownerID string, req *domain.CreateAccountRequest) (*domain.Account, error) {
	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}
	id := domain.NewID()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, owner_id, name, type, balance, currency) VALUES (?, ?, ?, ?, ?, ?)`,
		id, ownerID, req.Name, req.Type, req.Balance, currency)
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns an account by ID.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountCols+` FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

// List returns every family account ordered by name.
func (r *AccountRepo) List(ctx context.Context) ([]*domain.Account, error) {
	return r.list(ctx, `SELECT `+accountCols+` FROM accounts ORDER BY name`)
}

// ListByOwner returns the accounts owned by one user.
func (r *AccountRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Account, error) {
	return r.list(ctx, `SELECT `+accountCols+` FROM accounts WHERE owner_id = ? ORDER BY name`, ownerID)
}

func (r *AccountRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var accounts []*domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// Update applies the non-nil fields of req to the account.
func (r *AccountRepo) Update(ctx context.Context, id string, req *domain.UpdateAccountRequest) (*domain.Account, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Type != nil {
		a.Type = *req.Type
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE accounts SET name = ?, type = ?, updated_at = ? WHERE id = ?`,
		a.Name, a.Type, time.Now().UTC(), id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes an account and, via cascade, its transactions.
func (r *AccountRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("account %s not found", id)
	}
	return nil
}

// UpdateBalance adjusts the running balance by delta cents.
func (r *AccountRepo) UpdateBalance(ctx context.Context, id string, delta int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET balance = balance + ?, updated_at = ? WHERE id = ?`,
		delta, time.Now().UTC(), id)
	if err != nil {
		return mapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("account %s not found", id)
	}
	return nil
}

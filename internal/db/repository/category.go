package repository

import (
	"context"
	"database/sql"

	"github.com/asilingas/fambudg/internal/domain"
)

var _ domain.CategoryRepository = (*CategoryRepo)(nil)

const categoryCols = `id, parent_id, name, type, icon, sort_order`

// CategoryRepo implements domain.CategoryRepository on SQLite.
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func scanCategory(row interface{ Scan(dest ...any) error }) (*domain.Category, error) {
	c := &domain.Category{}
	var parent sql.NullString
	err := row.Scan(&c.ID, &parent, &c.Name, &c.Type, &c.Icon, &c.SortOrder)
	if err != nil {
		return nil, mapDBError(err)
	}
	c.ParentID = ptrFromNullStr(parent)
	return c, nil
}

// Create inserts a new category.
func (r *CategoryRepo) Create(ctx context.Context, req *domain.CreateCategoryRequest) (*domain.Category, error) {
	id := domain.NewID()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, parent_id, name, type, icon, sort_order) VALUES (?, ?, ?, ?, ?, ?)`,
		id, nullStrFromPtr(req.ParentID), req.Name, req.Type, req.Icon, req.SortOrder)
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns a category by ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+categoryCols+` FROM categories WHERE id = ?`, id)
	return scanCategory(row)
}

// List returns all categories ordered by sort order, then name.
func (r *CategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+categoryCols+` FROM categories ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var categories []*domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Update applies the non-nil fields of req to the category.
func (r *CategoryRepo) Update(ctx context.Context, id string, req *domain.UpdateCategoryRequest) (*domain.Category, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Icon != nil {
		c.Icon = *req.Icon
	}
	if req.SortOrder != nil {
		c.SortOrder = *req.SortOrder
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, icon = ?, sort_order = ? WHERE id = ?`,
		c.Name, c.Icon, c.SortOrder, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a category.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("category %s not found", id)
	}
	return nil
}

// HasTransactions reports whether any transaction references the category.
func (r *CategoryRepo) HasTransactions(ctx context.Context, id string) (bool, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE category_id = ?`, id).Scan(&n)
	return n > 0, err
}
